// Package config holds command-line and environment configuration.
package config

import (
	"fmt"
	"strings"
)

// CustomAttribute is a user-supplied span attribute computed from gesture
// fields by an expression.
type CustomAttribute struct {
	// Name is the attribute key.
	Name string
	// Expression is an expr-lang expression evaluated per gesture.
	Expression string
}

// Config holds the parsed command-line configuration.
type Config struct {
	// Stdin reads event lines from standard input instead of spawning
	// the debug bridge.
	Stdin bool
	// ServicePackage is the Android package receiving gesture broadcasts.
	// Empty disables broadcasting.
	ServicePackage string
	// ActionLogPath is the JSON action log file. Empty disables the log.
	ActionLogPath string
	// CustomAttributes are attached to every gesture span.
	CustomAttributes []CustomAttribute
}

// ParseArgs parses command-line arguments and returns a Config.
// Expected format: program_name [--stdin] [--package <pkg>] [--log <path>] [--attr name=expr]...
func ParseArgs(args []string) (*Config, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("no arguments provided")
	}

	programName := args[0]
	cfg := &Config{}

	for i := 1; i < len(args); i++ {
		switch args[i] {
		case "--stdin":
			cfg.Stdin = true

		case "--package", "-p":
			if i+1 >= len(args) {
				return nil, fmt.Errorf("%s requires a value", args[i])
			}
			cfg.ServicePackage = args[i+1]
			i++

		case "--log", "-l":
			if i+1 >= len(args) {
				return nil, fmt.Errorf("%s requires a value", args[i])
			}
			cfg.ActionLogPath = args[i+1]
			i++

		case "--attr", "-a":
			if i+1 >= len(args) {
				return nil, fmt.Errorf("%s requires a value", args[i])
			}
			attr, err := parseCustomAttribute(args[i+1])
			if err != nil {
				return nil, err
			}
			cfg.CustomAttributes = append(cfg.CustomAttributes, attr)
			i++

		default:
			return nil, fmt.Errorf("Usage: %s [--stdin] [--package <pkg>] [--log <path>] [--attr name=expr]...\nExample: %s --package com.wiretap --log actions.jsonl",
				programName, programName)
		}
	}

	return cfg, nil
}

// parseCustomAttribute splits a name=expression pair. The expression may
// itself contain '='; only the first one separates.
func parseCustomAttribute(s string) (CustomAttribute, error) {
	kv := strings.SplitN(s, "=", 2)
	if len(kv) != 2 {
		return CustomAttribute{}, fmt.Errorf("attribute must be name=expression, got %q", s)
	}

	name := strings.TrimSpace(kv[0])
	expression := strings.TrimSpace(kv[1])
	if name == "" {
		return CustomAttribute{}, fmt.Errorf("attribute name must not be empty in %q", s)
	}
	if expression == "" {
		return CustomAttribute{}, fmt.Errorf("attribute expression must not be empty in %q", s)
	}

	return CustomAttribute{Name: name, Expression: expression}, nil
}
