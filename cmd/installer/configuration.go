/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package main

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/stormogulen/Installer/config"
	"github.com/stormogulen/Installer/internal/fsactions"
	"github.com/stormogulen/Installer/logs"
	"github.com/stormogulen/Installer/retry"
)

const envVarPrefix = "INSTALLER"

// Configuration of the installer. Every entry can be set with an INSTALLER_ prefixed environment variable e.g. INSTALLER_LOGGING_BACKEND.
type Configuration struct {
	Logging logs.LoggingConfiguration      `mapstructure:"logging"`
	Layout  fsactions.Layout               `mapstructure:"layout"`
	Retry   retry.RetryPolicyConfiguration `mapstructure:"retry"`
	FailAt  string                         `mapstructure:"fail_at"`
}

func (cfg *Configuration) Validate() error {
	validation.ErrorTag = "mapstructure"
	err := config.ValidateEmbedded(cfg)
	if err != nil {
		return err
	}
	return cfg.Installer().Validate()
}

// Installer returns the part of the configuration describing the installation itself.
func (cfg *Configuration) Installer() *fsactions.InstallerConfiguration {
	return &fsactions.InstallerConfiguration{
		Layout: cfg.Layout,
		Retry:  cfg.Retry,
		FailAt: cfg.FailAt,
	}
}

func DefaultConfiguration() *Configuration {
	installer := fsactions.DefaultInstallerConfiguration()
	return &Configuration{
		Logging: *logs.DefaultLoggingConfiguration(),
		Layout:  installer.Layout,
		Retry:   installer.Retry,
	}
}

func newFlagSet(name string) *pflag.FlagSet {
	defaults := DefaultConfiguration()
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.String("fail-at", "", "inject a failure in an action, as unit:slot (e.g. directory:script)")
	flags.String("log-backend", defaults.Logging.Backend, "logging backend, one of std, zap, logrus, hclog, zerolog, noop")
	flags.Bool("verbose", false, "verbose logging")
	flags.String("log-file", "", "also log to this rotating file")
	flags.String("source", defaults.Layout.Source, "file to install")
	flags.String("destination", defaults.Layout.Destination, "where the file is installed")
	flags.String("directory", defaults.Layout.Directory, "data directory to create")
	flags.Int("max-retry", 0, "number of attempts of forward actions, retries are disabled when lower than 2")
	return flags
}

var flagBindings = map[string]string{
	"fail-at":     "FAIL_AT",
	"log-backend": "LOGGING_BACKEND",
	"verbose":     "LOGGING_VERBOSE",
	"log-file":    "LOGGING_FILE",
	"source":      "LAYOUT_SOURCE",
	"destination": "LAYOUT_DESTINATION",
	"directory":   "LAYOUT_DIRECTORY",
	"max-retry":   "RETRY_MAX_RETRY",
}

// loadConfiguration parses the command line and loads the configuration from flags, environment and defaults.
func loadConfiguration(name string, args []string) (*Configuration, error) {
	flags := newFlagSet(name)
	err := flags.Parse(args)
	if err != nil {
		return nil, err
	}
	session := viper.New()
	for flagName, envVar := range flagBindings {
		err = config.BindFlagToEnv(session, envVarPrefix, envVar, flags.Lookup(flagName))
		if err != nil {
			return nil, err
		}
	}
	cfg := &Configuration{}
	err = config.LoadFromViper(session, envVarPrefix, cfg, DefaultConfiguration())
	if err != nil {
		return nil, err
	}
	enableRetries(&cfg.Retry)
	return cfg, cfg.Validate()
}

// enableRetries switches retries on whenever more than one attempt is requested, whatever the source of the setting.
func enableRetries(policy *retry.RetryPolicyConfiguration) {
	if policy.Enabled || policy.RetryMax <= 1 {
		return
	}
	basic := retry.DefaultBasicRetryPolicyConfiguration()
	policy.Enabled = true
	if policy.RetryWaitMin == 0 {
		policy.RetryWaitMin = basic.RetryWaitMin
	}
	if policy.RetryWaitMax == 0 {
		policy.RetryWaitMax = basic.RetryWaitMax
	}
}
