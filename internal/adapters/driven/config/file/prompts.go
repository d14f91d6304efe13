package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/cogitate-labs/cogitate-cli/internal/core/ports/driven"
)

// Ensure PromptStore implements the interface.
var _ driven.PromptStore = (*PromptStore)(nil)

// PromptStore loads team role prompts from user-editable files on disk.
// Prompts are loaded from a configurable directory with fallback to embedded defaults.
//
// The store uses lazy initialisation - files are only created when first accessed,
// not in the constructor. This makes testing easier and avoids unexpected I/O.
type PromptStore struct {
	mu        sync.RWMutex
	promptDir string
	cache     map[string]string
	initOnce  sync.Once
	initErr   error
}

// defaultPrompts contains embedded default role prompts.
// These are used when user files don't exist and as the initial content for new files.
var defaultPrompts = map[string]string{
	driven.PromptCoordinator: `You coordinate a team of specialists working through a sequential thinking process.
For each thought you receive, weigh your specialists' findings and synthesize a single
coherent response. Point out flaws in the thought, recommend a revision of an earlier
thought when the reasoning went wrong, and suggest branching when an alternative
approach is worth exploring. Be direct and concrete.`,

	driven.PromptPlanner: `Break the thought down into concrete steps.
Identify what must happen next, in what order, and which steps depend on earlier ones.
Flag steps that were skipped or assumed.`,

	driven.PromptResearcher: `Identify what information the thought relies on.
List the facts it assumes, which of them are unverified, and what evidence would
confirm or refute them.`,

	driven.PromptAnalyzer: `Examine the logical structure of the thought.
Check whether the conclusion follows from the premises, surface hidden assumptions,
and note where the reasoning is strongest and weakest.`,

	driven.PromptCritic: `Challenge the thought.
Find counterexamples, edge cases, and failure modes it does not account for.
If an earlier thought in the sequence was flawed, say which one and why.`,

	driven.PromptSynthesizer: `Condense the essentials of the thought.
State its core claim in one or two sentences and how it connects to the overall
problem being worked through.`,
}

// NewPromptStore creates a new file-based prompt store.
// If promptDir is empty, defaults to ~/.cogitate/prompts/.
//
// The constructor does not perform any I/O - directory creation and
// file writes happen lazily on first Load() call.
func NewPromptStore(promptDir string) (*PromptStore, error) {
	if promptDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home directory: %w", err)
		}
		promptDir = filepath.Join(home, ".cogitate", "prompts")
	}

	return &PromptStore{
		promptDir: promptDir,
		cache:     make(map[string]string),
	}, nil
}

// Load returns the prompt template for the given name.
// On first call, initialises the prompt directory and creates default files.
// Returns cached value if available, otherwise loads from file.
// Falls back to embedded default if file doesn't exist.
func (s *PromptStore) Load(name string) (string, error) {
	// Ensure directory and defaults exist (lazy init)
	s.initOnce.Do(s.initialise)
	if s.initErr != nil {
		// Fall back to embedded defaults if init failed
		if prompt, ok := defaultPrompts[name]; ok {
			return prompt, nil
		}
		return "", fmt.Errorf("prompt store init failed: %w", s.initErr)
	}

	// Check cache first (read lock)
	s.mu.RLock()
	if prompt, ok := s.cache[name]; ok {
		s.mu.RUnlock()
		return prompt, nil
	}
	s.mu.RUnlock()

	// Load from file (no lock held during I/O)
	prompt, err := s.loadFromFile(name)
	if err != nil {
		// Fall back to embedded default
		if defaultPrompt, ok := defaultPrompts[name]; ok {
			return defaultPrompt, nil
		}
		return "", fmt.Errorf("load prompt %q: %w", name, err)
	}

	// Cache the result (write lock)
	// Use double-check pattern to avoid overwriting concurrent loads
	s.mu.Lock()
	if _, ok := s.cache[name]; !ok {
		s.cache[name] = prompt
	} else {
		// Another goroutine loaded it first, use their value
		prompt = s.cache[name]
	}
	s.mu.Unlock()

	return prompt, nil
}

// Reload clears the prompt cache, forcing fresh loads from disk.
func (s *PromptStore) Reload() {
	s.mu.Lock()
	s.cache = make(map[string]string)
	s.mu.Unlock()
}

// Dir returns the prompt directory path.
func (s *PromptStore) Dir() string {
	return s.promptDir
}

// initialise creates the prompt directory and default files.
// Called once via sync.Once on first Load().
func (s *PromptStore) initialise() {
	// Create directory
	if err := os.MkdirAll(s.promptDir, 0700); err != nil {
		s.initErr = fmt.Errorf("create prompt directory: %w", err)
		return
	}

	// Create default prompt files (only if they don't exist)
	for name, content := range defaultPrompts {
		path := filepath.Join(s.promptDir, name+".txt")
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := os.WriteFile(path, []byte(content), 0600); err != nil {
				s.initErr = fmt.Errorf("create default prompt %q: %w", name, err)
				return
			}
		}
	}

	// Create README
	if err := s.createReadme(); err != nil {
		s.initErr = err
	}
}

// loadFromFile reads a prompt from disk.
func (s *PromptStore) loadFromFile(name string) (string, error) {
	path := filepath.Join(s.promptDir, name+".txt")
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// createReadme writes a README file explaining the prompts directory.
func (s *PromptStore) createReadme() error {
	path := filepath.Join(s.promptDir, "README.md")
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return nil // Already exists or stat error (ignore)
	}

	content := `# Cogitate Prompts

This directory contains customisable role prompts for the thinking team.

## Files

- ` + "`coordinator.txt`" + ` - System prompt for the team coordinator
- ` + "`specialist_planner.txt`" + ` - Planner role prompt
- ` + "`specialist_researcher.txt`" + ` - Researcher role prompt
- ` + "`specialist_analyzer.txt`" + ` - Analyzer role prompt
- ` + "`specialist_critic.txt`" + ` - Critic role prompt
- ` + "`specialist_synthesizer.txt`" + ` - Synthesizer role prompt

## Customisation

Edit any file to customise team behaviour. Changes take effect on the next
server start.

The first line of each specialist prompt is used as its one-line role
description in the coordinator's roster.
`
	return os.WriteFile(path, []byte(content), 0600)
}
