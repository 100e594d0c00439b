package coach

import (
	"fmt"
	"strings"
)

func generationPrompt(req ProblemRequest) string {
	focusText := ""
	if len(req.FocusAreas) > 0 {
		focusText = "Focus specifically on: " + strings.Join(req.FocusAreas, ", ")
	}
	hintInstruction := "Do not include solution hints."
	if req.IncludeHints {
		hintInstruction = "Include a high-level approach hint for each variation."
	}

	return fmt.Sprintf(`As DSA-COACH AI, analyze the following coding problem and generate %d similar problem variations.

Original Problem:
%s

Requirements:
1. Generate %d variations that practice the same core algorithmic concept
2. Difficulty level: %s
3. Include these context variations: %s
4. %s
5. %s
6. Each variation should have:
   - A clear problem title
   - Complete problem statement with examples
   - Same core algorithmic pattern but different context
   - Appropriate constraints
   - Estimated solve time
   - Expected time/space complexity

For each variation, provide:
- Title: Brief descriptive title
- Difficulty: Easy/Medium/Hard
- Core Concept: Main algorithmic concept being practiced
- Statement: Complete problem description with examples and constraints
- Context: How it differs from the original
- Estimated Time: Expected solve time (e.g., "15-20 min")
- Complexity: Expected time complexity (e.g., "O(n)")
- Approach Hint: High-level approach (only if requested)

Format your response as a structured list with clear sections for each problem.
Make sure each variation is significantly different but tests the same core concept.`,
		req.Count, req.OriginalProblem, req.Count, req.Difficulty,
		strings.Join(req.ContextOptions, ", "), focusText, hintInstruction)
}

func reviewPrompt(req ReviewRequest) string {
	aspects := "all aspects"
	if len(req.FocusAspects) > 0 {
		aspects = strings.Join(req.FocusAspects, ", ")
	}
	problemContext := req.ProblemContext
	if strings.TrimSpace(problemContext) == "" {
		problemContext = "Not provided"
	}
	additional := req.AdditionalContext
	if strings.TrimSpace(additional) == "" {
		additional = "None"
	}

	return fmt.Sprintf(`As DSA-COACH AI, provide a comprehensive code review for this %s code:

Problem Context: %s

Code:
`+"```%s\n%s\n```"+`

Additional Context: %s

Focus on these aspects: %s

Provide a detailed analysis including:

1. OVERALL ANALYSIS:
   - Correctness assessment (score 1-10)
   - Time complexity analysis
   - Space complexity analysis
   - Code style rating (1-10)
   - Brief summary of the solution quality

2. ISSUES FOUND:
   - Logic errors or bugs
   - Edge cases not handled
   - Performance issues
   - Style/readability problems
   - Security concerns (if applicable)

3. OPTIMIZATIONS:
   - Performance improvements
   - Memory usage optimizations
   - Cleaner implementation suggestions
   - Best practice recommendations

4. ALTERNATIVE APPROACHES:
   - Different algorithms that could work
   - Trade-offs between approaches
   - When to use each approach
   - More elegant or efficient solutions

Be constructive and educational. Explain the 'why' behind your suggestions.
Format your response with clear section headers.`,
		req.Language, problemContext, req.Language, req.Code, additional, aspects)
}

var hintLevelInstructions = map[int]string{
	1: `Provide Level 1 hint - CLARIFYING QUESTIONS:
- Ask 2-3 thought-provoking questions to help understand the problem better
- Guide them to identify key constraints and requirements
- Help them think about edge cases
- Don't reveal the algorithm or approach yet

Focus on problem comprehension, not solution approach.`,
	2: `Provide Level 2 hint - ALGORITHM DIRECTION:
- Suggest the general algorithmic approach (e.g., "Consider using two pointers")
- Mention the data structure family that might be helpful
- Explain WHY this approach fits the problem
- Don't give implementation details yet

Guide them toward the right algorithmic thinking.`,
	3: `Provide Level 3 hint - SOLUTION STRUCTURE:
- Outline the high-level steps of the solution
- Explain the overall structure and flow
- Mention key variables or data structures needed
- Still avoid specific code implementation

Help them see the solution framework.`,
	4: `Provide Level 4 hint - IMPLEMENTATION HELP:
- Give specific implementation guidance
- Show pseudocode or key code snippets if needed
- Address common implementation pitfalls
- Help with the trickiest parts of coding

Provide concrete implementation assistance while encouraging independent coding.`,
}

func hintPrompt(problem Problem, level int, userApproach string) string {
	approachText := ""
	if strings.TrimSpace(userApproach) != "" {
		approachText = "\nUser's current approach: " + userApproach
	}

	base := fmt.Sprintf(`As DSA-COACH AI, provide a Level %d hint for this problem:

Problem: %s
%s`, level, problem.Statement, approachText)

	if instr, ok := hintLevelInstructions[level]; ok {
		return base + "\n\n" + instr
	}
	return base
}

func personalizedHintPrompt(problem Problem, userApproach string) string {
	return fmt.Sprintf(`As DSA-COACH AI, analyze the user's current approach and provide personalized guidance:

Problem: %s

User's Current Approach: %s

Please:
1. Evaluate their approach - is it on the right track?
2. If correct direction: Encourage and give next steps
3. If incorrect: Gently redirect without discouraging
4. Provide specific, actionable guidance based on their thinking
5. Ask follow-up questions to guide their thought process

Be supportive and build on their existing understanding.`, problem.Statement, userApproach)
}

func stuckHelpPrompt(problem Problem) string {
	return fmt.Sprintf(`As DSA-COACH AI, the user is completely stuck on this problem. Provide emergency guidance:

Problem: %s

The user needs immediate help to get unstuck. Please:
1. Reassure them that being stuck is normal and part of learning
2. Suggest a simpler version of the problem to start with
3. Provide a concrete first step they can take
4. Offer an analogy or real-world example to build intuition
5. Suggest breaking the problem into smaller pieces

Focus on getting them moving again with confidence.`, problem.Statement)
}
