package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"MortgageLab/internal/model"
)

// Config holds all application configuration.
type Config struct {
	Title string `yaml:"title"`
	// Seed makes every batch reproducible when non-zero.
	Seed      int64            `yaml:"seed"`
	Scenarios []ScenarioConfig `yaml:"scenarios"`

	Affordability *AffordabilityConfig `yaml:"affordability"`
	PurchaseCosts *PurchaseCostConfig  `yaml:"purchase_costs"`

	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Watch struct {
		Cron string `yaml:"cron"`
	} `yaml:"watch"`
}

// ScenarioConfig declares one named simulation scenario.
type ScenarioConfig struct {
	Name      string  `yaml:"name"`
	Type      string  `yaml:"type"` // fixed | variable | mixed
	Principal float64 `yaml:"principal"`
	TermYears int     `yaml:"term_years"`

	Rate float64 `yaml:"rate"` // fixed

	Spread       float64 `yaml:"spread"`        // variable, mixed
	InitialIndex float64 `yaml:"initial_index"` // variable, mixed
	FixedRate    float64 `yaml:"fixed_rate"`    // mixed
	FixedYears   int     `yaml:"fixed_years"`   // mixed

	Model       string `yaml:"model"` // gaussian | mean-reverting | uniform-walk | constant
	ModelParams struct {
		Volatility      float64 `yaml:"volatility"`
		Drift           float64 `yaml:"drift"`
		MeanLevel       float64 `yaml:"mean_level"`
		ReversionSpeed  float64 `yaml:"reversion_speed"`
		MaxAnnualChange float64 `yaml:"max_annual_change"`
	} `yaml:"model_params"`
	Simulations int `yaml:"simulations"`

	Injections []InjectionConfig `yaml:"injections"`
}

// InjectionConfig declares an extra principal payment in a given month.
type InjectionConfig struct {
	Month  int     `yaml:"month"`
	Amount float64 `yaml:"amount"`
	Policy string  `yaml:"policy"` // reduce-payment | reduce-term | empty
}

// AffordabilityConfig enables the maximum-price estimate in the report.
type AffordabilityConfig struct {
	NetMonthlySalary float64 `yaml:"net_monthly_salary"`
	PaymentToSalary  float64 `yaml:"payment_to_salary"`
	DownPaymentPct   float64 `yaml:"down_payment_pct"`
	Rate             float64 `yaml:"rate"`
	TermYears        int     `yaml:"term_years"`
}

// PurchaseCostConfig enables the up-front cost estimate in the report.
type PurchaseCostConfig struct {
	Price          float64 `yaml:"price"`
	NewBuild       bool    `yaml:"new_build"`
	Agency         bool    `yaml:"agency"`
	TransferTaxPct float64 `yaml:"transfer_tax_pct"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and per-scenario defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// Environment variable overrides
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("WATCH_CRON"); v != "" {
		cfg.Watch.Cron = v
	}
	if v := os.Getenv("BATCH_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Seed = seed
		}
	}

	// Defaults
	if cfg.Title == "" {
		cfg.Title = "Mortgage comparison"
	}
	for i := range cfg.Scenarios {
		applyScenarioDefaults(&cfg.Scenarios[i])
	}

	return cfg, nil
}

func applyScenarioDefaults(sc *ScenarioConfig) {
	if sc.Type != string(model.ScenarioFixed) {
		if sc.Model == "" {
			sc.Model = string(model.ModelConstant)
		}
		if sc.Simulations == 0 {
			sc.Simulations = 1000
		}
	}
	switch model.ModelKind(sc.Model) {
	case model.ModelGaussian:
		if sc.ModelParams.Volatility == 0 {
			sc.ModelParams.Volatility = 0.5
		}
	case model.ModelMeanReverting:
		if sc.ModelParams.Volatility == 0 {
			sc.ModelParams.Volatility = 0.3
		}
		if sc.ModelParams.ReversionSpeed == 0 {
			sc.ModelParams.ReversionSpeed = 0.1
		}
		if sc.ModelParams.MeanLevel == 0 {
			sc.ModelParams.MeanLevel = sc.InitialIndex
		}
	case model.ModelUniformWalk:
		if sc.ModelParams.MaxAnnualChange == 0 {
			sc.ModelParams.MaxAnnualChange = 0.25
		}
	}
}

// Validate checks that the batch is runnable.
func (c *Config) Validate() error {
	if len(c.Scenarios) == 0 {
		return fmt.Errorf("at least one scenario is required")
	}
	seen := make(map[string]bool, len(c.Scenarios))
	for i := range c.Scenarios {
		sc := &c.Scenarios[i]
		if sc.Name == "" {
			return fmt.Errorf("scenario %d: name is required", i)
		}
		if seen[sc.Name] {
			return fmt.Errorf("scenario name %q is duplicated", sc.Name)
		}
		seen[sc.Name] = true
		if err := sc.validate(); err != nil {
			return fmt.Errorf("scenario %q: %w", sc.Name, err)
		}
	}
	if c.Affordability != nil {
		a := c.Affordability
		if a.NetMonthlySalary <= 0 || a.PaymentToSalary <= 0 || a.TermYears <= 0 {
			return fmt.Errorf("affordability: salary, ratio and term must be positive")
		}
	}
	if c.PurchaseCosts != nil && c.PurchaseCosts.Price <= 0 {
		return fmt.Errorf("purchase_costs.price must be positive")
	}
	return nil
}

func (sc *ScenarioConfig) validate() error {
	if sc.Principal <= 0 {
		return fmt.Errorf("principal must be positive")
	}
	if sc.TermYears <= 0 {
		return fmt.Errorf("term_years must be positive")
	}
	switch model.ScenarioKind(sc.Type) {
	case model.ScenarioFixed:
		if sc.Rate <= 0 {
			return fmt.Errorf("rate must be positive for a fixed scenario")
		}
	case model.ScenarioVariable:
		if err := sc.validateStochastic(); err != nil {
			return err
		}
	case model.ScenarioMixed:
		if sc.FixedRate <= 0 {
			return fmt.Errorf("fixed_rate must be positive for a mixed scenario")
		}
		if sc.FixedYears < 1 || sc.FixedYears >= sc.TermYears {
			return fmt.Errorf("fixed_years must be in [1, term_years)")
		}
		if err := sc.validateStochastic(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown scenario type %q", sc.Type)
	}
	for _, inj := range sc.Injections {
		if inj.Month < 1 {
			return fmt.Errorf("injection month %d must be >= 1", inj.Month)
		}
		if inj.Amount < 0 {
			return fmt.Errorf("injection amount in month %d must be >= 0", inj.Month)
		}
		if !model.Policy(inj.Policy).Valid() {
			return fmt.Errorf("unknown injection policy %q in month %d", inj.Policy, inj.Month)
		}
	}
	return nil
}

func (sc *ScenarioConfig) validateStochastic() error {
	switch model.ModelKind(sc.Model) {
	case model.ModelGaussian, model.ModelMeanReverting, model.ModelUniformWalk, model.ModelConstant:
	default:
		return fmt.Errorf("unknown path model %q", sc.Model)
	}
	if sc.Simulations <= 0 {
		return fmt.Errorf("simulations must be positive")
	}
	return nil
}

// BuildScenarios returns the batch converted to engine-level scenario values.
func (c *Config) BuildScenarios() []model.Scenario {
	scenarios := make([]model.Scenario, 0, len(c.Scenarios))
	for _, sc := range c.Scenarios {
		scenarios = append(scenarios, sc.toModel())
	}
	return scenarios
}

func (sc *ScenarioConfig) toModel() model.Scenario {
	injections := make([]model.Injection, 0, len(sc.Injections))
	for _, inj := range sc.Injections {
		injections = append(injections, model.Injection{
			Month:  inj.Month,
			Amount: inj.Amount,
			Policy: model.Policy(inj.Policy),
		})
	}
	return model.Scenario{
		Name:         sc.Name,
		Kind:         model.ScenarioKind(sc.Type),
		Principal:    sc.Principal,
		TermYears:    sc.TermYears,
		Rate:         sc.Rate,
		Spread:       sc.Spread,
		InitialIndex: sc.InitialIndex,
		FixedRate:    sc.FixedRate,
		FixedYears:   sc.FixedYears,
		Model:        model.ModelKind(sc.Model),
		ModelParams: model.ModelParams{
			Volatility:      sc.ModelParams.Volatility,
			Drift:           sc.ModelParams.Drift,
			MeanLevel:       sc.ModelParams.MeanLevel,
			ReversionSpeed:  sc.ModelParams.ReversionSpeed,
			MaxAnnualChange: sc.ModelParams.MaxAnnualChange,
		},
		Simulations: sc.Simulations,
		Injections:  injections,
	}
}
