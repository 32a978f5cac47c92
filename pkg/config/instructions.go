// Package config manages the classifier agent instruction text: an immutable
// snapshot with a monotonically increasing version counter, loaded from a
// YAML file and swapped only by an explicit Reload.
package config

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// defaultInstructions is the built-in fallback used when no instruction file
// is configured or readable.
const defaultInstructions = `You are an expert Infrastructure-as-Code analyst with deep understanding of automation concepts and Ansible capabilities.

MISSION: Analyze infrastructure code semantically and determine Ansible convertibility based on understanding, not rules.

ASSESS these infrastructure automation concepts:
- Package management (installing, updating software)
- Service management (starting, stopping, configuring services)
- File/template management (creating, copying, templating files)
- User/group management (creating users, setting permissions)
- System configuration (environments, configurations)
- Cloud resource provisioning (VMs, networks, storage)
- Container management (building, deploying containers)

CONVERTIBLE when operations involve standard infrastructure management that maps to existing Ansible modules, even if complex.
NOT CONVERTIBLE when operations are outside infrastructure automation scope or require capabilities Ansible fundamentally lacks.

Focus on WHAT the code does, not WHICH tool it uses. Provide detailed reasoning for your convertibility decision and explain the conversion approach if convertible.`

// Snapshot is an immutable view of the current instructions. Callers compare
// Version against the last one they used to notice a reload.
type Snapshot struct {
	Instructions string
	Version      uint64
}

// Info describes the store for diagnostics endpoints.
type Info struct {
	Path               string `json:"path,omitempty"`
	Version            uint64 `json:"version"`
	InstructionsLength int    `json:"instructions_length"`
	UsingFallback      bool   `json:"using_fallback"`
}

// instructionsFile mirrors the agents.yaml layout: a map of agents, of which
// only the classifier entry matters here.
type instructionsFile struct {
	Agents map[string]struct {
		Name         string `yaml:"name"`
		Instructions string `yaml:"instructions"`
	} `yaml:"agents"`
}

// Store hands out instruction snapshots. The zero-value is not usable; build
// one with NewStore.
type Store struct {
	mu       sync.RWMutex
	path     string
	current  Snapshot
	fallback bool
}

// NewStore creates a store reading the classifier instructions from the
// given YAML file. An empty path, a missing file, or a file without a
// classifier entry all fall back to the built-in instructions; only a
// malformed file is an error.
func NewStore(path string) (*Store, error) {
	s := &Store{path: path}
	text, fallback, err := s.read()
	if err != nil {
		return nil, err
	}
	s.current = Snapshot{Instructions: text, Version: 1}
	s.fallback = fallback
	return s, nil
}

// Snapshot returns the current instructions. The returned value never
// changes; a concurrent Reload produces a new snapshot with a higher
// version instead.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Reload re-reads the instruction file. The version is bumped only when the
// text actually changed, so pollers can compare versions cheaply.
func (s *Store) Reload() (Snapshot, error) {
	text, fallback, err := s.read()
	if err != nil {
		return Snapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if text != s.current.Instructions {
		s.current = Snapshot{Instructions: text, Version: s.current.Version + 1}
	}
	s.fallback = fallback
	return s.current, nil
}

// Info reports the store state for diagnostics.
func (s *Store) Info() Info {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Info{
		Path:               s.path,
		Version:            s.current.Version,
		InstructionsLength: len(s.current.Instructions),
		UsingFallback:      s.fallback,
	}
}

func (s *Store) read() (text string, fallback bool, err error) {
	if s.path == "" {
		return defaultInstructions, true, nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultInstructions, true, nil
		}
		return "", false, fmt.Errorf("read instructions file: %w", err)
	}

	var file instructionsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return "", false, fmt.Errorf("parse instructions file: %w", err)
	}

	agent, ok := file.Agents["classifier"]
	if !ok || agent.Instructions == "" {
		return defaultInstructions, true, nil
	}
	return agent.Instructions, false, nil
}
