package gdsp

/*------------------------------------------------------------------
 *
 * Purpose:     Modem configuration.
 *
 * Description:	Every tunable of the signal path in one struct, with
 *		defaults matching the reference design.  A YAML file
 *		can override any subset of them.
 *
 *----------------------------------------------------------------*/

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type TimingConfig struct {
	KpShift  uint  `yaml:"kp_shift"`
	KiShift  uint  `yaml:"ki_shift"`
	Deadzone int32 `yaml:"deadzone"`
	IntClamp int32 `yaml:"int_clamp"`
	Holdoff  int32 `yaml:"holdoff"`
}

type CarrierConfig struct {
	KpShiftAcq uint  `yaml:"kp_shift_acq"`
	KiShiftAcq uint  `yaml:"ki_shift_acq"`
	KpShiftTrk uint  `yaml:"kp_shift_trk"`
	OmegaClamp int32 `yaml:"omega_clamp"`
	Holdoff    int32 `yaml:"holdoff"`
	GearCount  int32 `yaml:"gear_count"`
	FreezeNco  bool  `yaml:"freeze_nco"`
}

type LockConfig struct {
	Shift     uint  `yaml:"shift"`
	Threshold int32 `yaml:"threshold"`
	MinCount  int32 `yaml:"min_count"`
}

type ModemConfig struct {
	SampleRate float64 `yaml:"sample_rate"`
	Sps        int     `yaml:"sps"`
	NumTaps    int     `yaml:"num_taps"`
	Alpha      float64 `yaml:"alpha"`

	Timing  TimingConfig  `yaml:"timing"`
	Carrier CarrierConfig `yaml:"carrier"`
	Lock    LockConfig    `yaml:"lock"`
}

func DefaultModemConfig() ModemConfig {
	return ModemConfig{
		SampleRate: 27.0e6,
		Sps:        4,
		NumTaps:    33,
		Alpha:      0.25,
		Timing: TimingConfig{
			KpShift:  2,
			KiShift:  6,
			Deadzone: 16,
			IntClamp: 2048,
			Holdoff:  16,
		},
		Carrier: CarrierConfig{
			KpShiftAcq: 3,
			KiShiftAcq: 6,
			KpShiftTrk: 1,
			OmegaClamp: 1024,
			Holdoff:    32,
			GearCount:  400,
		},
		Lock: LockConfig{
			Shift:     5,
			Threshold: 512,
			MinCount:  128,
		},
	}
}

/* Read overrides from a YAML file on top of the defaults. */

func LoadModemConfig(path string) (ModemConfig, error) {

	var cfg = DefaultModemConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Check(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

func (cfg *ModemConfig) Check() error {

	if cfg.Sps < 2 || cfg.Sps%2 != 0 {
		return fmt.Errorf("sps must be even and at least 2, got %d", cfg.Sps)
	}
	if (1<<TIMING_NCO_WIDTH)%cfg.Sps != 0 {
		return fmt.Errorf("sps %d does not divide the NCO range", cfg.Sps)
	}
	if cfg.NumTaps < 3 || cfg.NumTaps%2 == 0 {
		return fmt.Errorf("num_taps must be odd and at least 3, got %d", cfg.NumTaps)
	}
	if cfg.Alpha <= 0 || cfg.Alpha > 1 {
		return fmt.Errorf("alpha must be in (0, 1], got %g", cfg.Alpha)
	}
	if cfg.SampleRate <= 0 {
		return fmt.Errorf("sample_rate must be positive, got %g", cfg.SampleRate)
	}
	if cfg.Timing.IntClamp < 0 || cfg.Timing.Deadzone < 0 {
		return fmt.Errorf("timing deadzone and int_clamp must not be negative")
	}
	if cfg.Timing.Deadzone >= SAMPLE_MAX {
		return fmt.Errorf("timing deadzone %d covers the whole error range, integrator would never engage", cfg.Timing.Deadzone)
	}
	if cfg.Carrier.OmegaClamp < 0 {
		return fmt.Errorf("carrier omega_clamp must not be negative, got %d", cfg.Carrier.OmegaClamp)
	}
	if cfg.Carrier.Holdoff < 0 || cfg.Carrier.GearCount < 0 {
		return fmt.Errorf("carrier holdoff and gear_count must not be negative")
	}
	if cfg.Lock.Threshold <= 0 || cfg.Lock.MinCount <= 0 {
		return fmt.Errorf("lock threshold and min_count must be positive")
	}
	return nil
}
