package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/launchdarkly/go-sdk-common/v3/ldcontext"
	ld "github.com/launchdarkly/go-server-sdk/v7"

	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/constants"
	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/utils"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

type Config struct {
	OrganizationName string
	AppName          string
	AppPort          string
	AppUrl           string
	Env              string

	// Database
	StoreDriver string
	DBUrl       string

	// Twilio / SendGrid for report delivery
	TwilioAccountSID      string
	TwilioAuthToken       string
	SendGridAPIKey        string
	ReportEmailRecipients []string
	ReportSMSRecipients   []string

	// Scheduling
	CheckStateResetCron string

	// LaunchDarkly flags (env fallbacks when LD_SDK_KEY is unset)
	LDFlag_SeedDbWithTestData     bool
	LDFlag_CORSHighSecurity       bool
	LDFlag_CheckStateResetEnabled bool
	LDFlag_SendgridFromEmail      string
	LDFlag_SendgridSandboxMode    bool
	LDFlag_TwilioFromPhone        string

	ldClient *ld.LDClient
}

const (
	OrganizationName    = utils.OrganizationName
	LDConnectionTimeout = 5 * time.Second
)

// build-time overrides
var (
	AppName             = "housekeeping-service"
	LDServerContextKey  = "housekeeping-service"
	LDServerContextKind = "service"
)

// flagSource resolves a feature flag, falling back to def.
type flagSource interface {
	Bool(key string, def bool) (bool, error)
	String(key string, def string) (string, error)
}

// envFlags reads flags from upper-cased environment variables.
type envFlags struct {
	getenv func(string) string
}

func (e envFlags) Bool(key string, def bool) (bool, error) {
	raw := e.getenv(strings.ToUpper(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def, fmt.Errorf("%s: %w", strings.ToUpper(key), err)
	}
	return v, nil
}

func (e envFlags) String(key string, def string) (string, error) {
	if v := e.getenv(strings.ToUpper(key)); v != "" {
		return v, nil
	}
	return def, nil
}

// ldFlags evaluates flags against LaunchDarkly, defaulting to the env value.
type ldFlags struct {
	client *ld.LDClient
	ctx    ldcontext.Context
	env    envFlags
}

func (l ldFlags) Bool(key string, def bool) (bool, error) {
	fallback, err := l.env.Bool(key, def)
	if err != nil {
		return def, err
	}
	return l.client.BoolVariation(key, l.ctx, fallback)
}

func (l ldFlags) String(key string, def string) (string, error) {
	fallback, _ := l.env.String(key, def)
	return l.client.StringVariation(key, l.ctx, fallback)
}

// LoadConfig reads the process environment and exits on any missing
// required value.
func LoadConfig() *Config {
	if AppName == "" {
		utils.Logger.Fatal("AppName ldflag missing")
	}
	utils.Logger.Info("Loading config for app: ", AppName)

	env := envFlags{getenv: os.Getenv}
	var flags flagSource = env
	var client *ld.LDClient

	if ldSDKKey := os.Getenv("LD_SDK_KEY"); ldSDKKey != "" {
		c, err := ld.MakeClient(ldSDKKey, LDConnectionTimeout)
		if err != nil {
			utils.Logger.WithError(err).Fatal("Failed to create LaunchDarkly client")
		}
		if !c.Initialized() {
			c.Close()
			utils.Logger.Fatal("LaunchDarkly client failed to initialize")
		}
		client = c
		ctx := ldcontext.NewWithKind(ldcontext.Kind(LDServerContextKind), LDServerContextKey)
		flags = ldFlags{client: c, ctx: ctx, env: env}
	} else {
		utils.Logger.Info("LD_SDK_KEY not set, reading feature flags from env")
	}

	cfg, err := loadConfig(os.Getenv, flags)
	if err != nil {
		if client != nil {
			client.Close()
		}
		utils.Logger.WithError(err).Fatal("Invalid configuration")
	}
	cfg.ldClient = client
	return cfg
}

func loadConfig(getenv func(string) string, flags flagSource) (*Config, error) {
	cfg := &Config{
		OrganizationName: OrganizationName,
		AppName:          AppName,
	}

	cfg.Env = getenv("ENV")
	if cfg.Env == "" {
		return nil, fmt.Errorf("ENV env var is missing")
	}
	cfg.AppUrl = getenv("APP_URL_FROM_ANYWHERE")
	if cfg.AppUrl == "" {
		return nil, fmt.Errorf("APP_URL_FROM_ANYWHERE env var is missing")
	}
	cfg.AppPort = getenv("APP_PORT")
	if cfg.AppPort == "" {
		return nil, fmt.Errorf("APP_PORT env var is missing")
	}

	cfg.StoreDriver = strings.ToLower(getenv("STORE_DRIVER"))
	if cfg.StoreDriver == "" {
		cfg.StoreDriver = StoreDriverPostgres
	}
	switch cfg.StoreDriver {
	case StoreDriverPostgres:
		cfg.DBUrl = getenv("DB_URL")
		if cfg.DBUrl == "" {
			return nil, fmt.Errorf("DB_URL env var is missing")
		}
	case StoreDriverMemory:
		utils.Logger.Warn("STORE_DRIVER=memory, data will not survive a restart")
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	cfg.TwilioAccountSID = getenv("TWILIO_ACCOUNT_SID")
	cfg.TwilioAuthToken = getenv("TWILIO_AUTH_TOKEN")
	cfg.SendGridAPIKey = getenv("SENDGRID_API_KEY")
	cfg.ReportEmailRecipients = utils.SplitList(getenv("REPORT_EMAIL_RECIPIENTS"))
	cfg.ReportSMSRecipients = utils.SplitList(getenv("REPORT_SMS_RECIPIENTS"))

	cfg.CheckStateResetCron = getenv("CHECK_STATE_RESET_CRON")
	if cfg.CheckStateResetCron == "" {
		cfg.CheckStateResetCron = constants.DefaultCheckStateResetCron
	}

	var err error
	if cfg.LDFlag_SeedDbWithTestData, err = flags.Bool("seed_db_with_test_data", false); err != nil {
		return nil, fmt.Errorf("seed_db_with_test_data flag: %w", err)
	}
	utils.Logger.Debugf("seed_db_with_test_data flag: %t", cfg.LDFlag_SeedDbWithTestData)

	if cfg.LDFlag_CORSHighSecurity, err = flags.Bool("cors_high_security", false); err != nil {
		return nil, fmt.Errorf("cors_high_security flag: %w", err)
	}
	utils.Logger.Debugf("cors_high_security flag: %t", cfg.LDFlag_CORSHighSecurity)

	if cfg.LDFlag_CheckStateResetEnabled, err = flags.Bool("check_state_reset_enabled", false); err != nil {
		return nil, fmt.Errorf("check_state_reset_enabled flag: %w", err)
	}
	utils.Logger.Debugf("check_state_reset_enabled flag: %t", cfg.LDFlag_CheckStateResetEnabled)

	if cfg.LDFlag_SendgridSandboxMode, err = flags.Bool("sendgrid_sandbox_mode", false); err != nil {
		return nil, fmt.Errorf("sendgrid_sandbox_mode flag: %w", err)
	}
	utils.Logger.Debugf("sendgrid_sandbox_mode flag: %t", cfg.LDFlag_SendgridSandboxMode)

	if cfg.LDFlag_SendgridFromEmail, err = flags.String("sendgrid_from_email", ""); err != nil {
		return nil, fmt.Errorf("sendgrid_from_email flag: %w", err)
	}
	utils.Logger.Debugf("sendgrid_from_email flag: %s", cfg.LDFlag_SendgridFromEmail)

	if cfg.LDFlag_TwilioFromPhone, err = flags.String("twilio_from_phone", ""); err != nil {
		return nil, fmt.Errorf("twilio_from_phone flag: %w", err)
	}
	utils.Logger.Debugf("twilio_from_phone flag: %s", cfg.LDFlag_TwilioFromPhone)

	if len(cfg.ReportEmailRecipients) > 0 && (cfg.SendGridAPIKey == "" || cfg.LDFlag_SendgridFromEmail == "") {
		utils.Logger.Warn("REPORT_EMAIL_RECIPIENTS set without SENDGRID_API_KEY or sendgrid_from_email, e-mail delivery disabled")
	}
	if len(cfg.ReportSMSRecipients) > 0 && (cfg.TwilioAccountSID == "" || cfg.TwilioAuthToken == "" || cfg.LDFlag_TwilioFromPhone == "") {
		utils.Logger.Warn("REPORT_SMS_RECIPIENTS set without Twilio credentials or twilio_from_phone, SMS delivery disabled")
	}

	return cfg, nil
}

func (c *Config) Close() {
	if c.ldClient != nil {
		_ = c.ldClient.Close()
	}
}
