package driven

// PromptStore provides access to LLM prompt templates.
// Implementations may load prompts from files, embed them in the binary,
// or fetch them from a remote configuration service.
type PromptStore interface {
	// Load returns the prompt template for the given name.
	// If the prompt is not found, implementations should return a sensible
	// default or an error, depending on whether the prompt is required.
	Load(name string) (string, error)

	// Reload clears any cached prompts, forcing fresh loads on next access.
	// This is useful when prompts may have been edited on disk.
	Reload()
}

// Well-known prompt names used throughout the application.
// These constants define the contract between prompt consumers and providers.
const (
	// PromptCoordinator is the system prompt for the team coordinator.
	// It has no format placeholders.
	PromptCoordinator = "coordinator"

	// Specialist role prompts, one per team member. Each describes the
	// member's responsibility and is concatenated into the coordinator's
	// delegation roster. No format placeholders.
	PromptPlanner     = "specialist_planner"
	PromptResearcher  = "specialist_researcher"
	PromptAnalyzer    = "specialist_analyzer"
	PromptCritic      = "specialist_critic"
	PromptSynthesizer = "specialist_synthesizer"
)

// SpecialistPrompts lists the specialist prompt names in roster order.
func SpecialistPrompts() []string {
	return []string{
		PromptPlanner,
		PromptResearcher,
		PromptAnalyzer,
		PromptCritic,
		PromptSynthesizer,
	}
}
