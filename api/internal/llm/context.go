package llm

// ProfileSummary is the one-line view of a user profile supplied by the
// external collaborator. Empty fields render as "Unknown".
type ProfileSummary struct {
	SkillLevel string
	TargetGoal string
}

// ProblemSummary identifies the problem the user is currently working on.
type ProblemSummary struct {
	Title      string
	Difficulty string
}

// Context is the optional per-call context bundle used to enrich a
// generation request. It is read-only; the engine keeps no copy of it.
type Context struct {
	// History holds prior exchanges, oldest first. Only the last three
	// entries reach the prompt.
	History []string
	Profile *ProfileSummary
	Problem *ProblemSummary
}
