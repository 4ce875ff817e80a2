package tailor

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an expert resume writer and ATS optimization specialist. Your task is to tailor resumes to specific job descriptions while:

1. **Maintaining Authenticity**: Never fabricate experience or skills
2. **ATS Optimization**: Use keywords from the job description naturally
3. **Highlighting Relevance**: Emphasize experiences/skills that match the role
4. **Quantifying Impact**: Keep or enhance metrics and achievements
5. **Professional Tone**: Maintain professional language throughout
6. **Format Preservation**: Keep the markdown format with # ## ### and bullet points

Key Instructions:
- Reorder bullet points to prioritize relevant experience
- Rephrase accomplishments using job description keywords
- Adjust the summary/objective to align with the role
- Keep all dates, company names, and factual information unchanged
- If the job requires specific skills mentioned in the resume, emphasize them
- Remove or de-emphasize less relevant details
- Keep the resume concise and impactful

Return ONLY the tailored resume in markdown format. Do not add explanations or meta-commentary.`

func userPrompt(req Request) string {
	return fmt.Sprintf(`Job Title: %s
Company: %s

Job Description:
%s

---

Master Resume to Tailor:
%s

---

Please tailor this resume for the %s position at %s. Focus on highlighting relevant skills and experiences from the job description while maintaining complete authenticity.`,
		req.JobTitle, req.Company, req.JobDescription, req.MasterResume, req.JobTitle, req.Company)
}

// changeSummary is a heuristic, cosmetic summary — length-ratio guesses plus
// boilerplate, not a verified diff.
func changeSummary(original, tailored string) []string {
	var changes []string

	switch {
	case len(tailored) > len(original)*11/10:
		changes = append(changes, "Expanded descriptions to highlight relevant experience")
	case len(tailored) < len(original)*9/10:
		changes = append(changes, "Condensed resume to focus on key qualifications")
	}

	if strings.Contains(strings.ToLower(tailored), "achieved") &&
		!strings.Contains(strings.ToLower(original), "achieved") {
		changes = append(changes, "Enhanced achievement statements")
	}

	changes = append(changes,
		"Optimized for ATS keyword matching",
		"Reordered content to highlight relevant experience",
		"Adjusted professional summary for this role",
	)
	return changes
}
