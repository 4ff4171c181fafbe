package services

import (
	"fmt"
	"strings"

	"alfredoptarigan/cv-screener/internal/models"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildScreeningSystemPrompt establishes the ATS analyzer role and the result
// contract, including the selection threshold.
func (pb *PromptBuilder) BuildScreeningSystemPrompt() string {
	return fmt.Sprintf(`You are an expert HR recruiter and ATS (Applicant Tracking System) analyzer. Your job is to:
1. Analyze CVs against a job description
2. Calculate an ATS compatibility score (0-100)
3. Identify missing keywords
4. Provide clear selection/rejection reasons

For each CV, you must return:
- score: number between 0-100
- status: "selected" (score >= %[1]d) or "rejected" (score < %[1]d)
- missingKeywords: array of important keywords from job description missing in CV
- selectionReasons: array of bullet points explaining why candidate is a good fit (if selected)
- rejectionReasons: array of bullet points explaining why candidate doesn't fit (if rejected)
- matchedSkills: array of skills that match the job requirements
- experienceMatch: brief assessment of experience relevance

Be objective and thorough in your analysis.`, models.SelectionThreshold)
}

// BuildScreeningUserPrompt embeds the job description and every CV, in order.
func (pb *PromptBuilder) BuildScreeningUserPrompt(jobDescription string, cvs []models.CVText) string {
	blocks := make([]string, 0, len(cvs))
	for i, cv := range cvs {
		blocks = append(blocks, fmt.Sprintf("\n--- CV %d (ID: %s, Name: %s) ---\n%s", i+1, cv.ID, cv.Name, cv.Content))
	}

	return fmt.Sprintf(`Analyze these CVs against the following job description and provide ATS scores with detailed feedback.

JOB DESCRIPTION:
%s

CVS TO ANALYZE:
%s

Return a JSON array with the analysis for each CV. Each object should have:
{
  "cvId": "the CV id",
  "cvName": "the CV filename",
  "score": number,
  "status": "selected" | "rejected",
  "missingKeywords": ["keyword1", "keyword2"],
  "matchedSkills": ["skill1", "skill2"],
  "selectionReasons": ["reason1", "reason2"],
  "rejectionReasons": ["reason1", "reason2"],
  "experienceMatch": "brief assessment"
}

Return ONLY the JSON array, no other text.`,
		jobDescription, strings.Join(blocks, "\n"))
}

// BuildJobDescription renders a job role as a job description for screening.
func (pb *PromptBuilder) BuildJobDescription(role *models.JobRole) string {
	var sb strings.Builder
	sb.WriteString(strings.TrimSpace(role.Title))

	if desc := strings.TrimSpace(role.Description); desc != "" {
		sb.WriteString("\n\n")
		sb.WriteString(desc)
	}

	if len(role.Requirements) > 0 {
		sb.WriteString("\n\nRequirements:")
		for _, req := range role.Requirements {
			if req = strings.TrimSpace(req); req != "" {
				sb.WriteString("\n- ")
				sb.WriteString(req)
			}
		}
	}

	return strings.TrimSpace(sb.String())
}

// stripCodeFence removes a markdown fence, with or without a language tag,
// that the model may wrap its JSON in.
func stripCodeFence(content string) string {
	clean := strings.TrimSpace(content)
	if strings.HasPrefix(clean, "```") {
		clean = strings.TrimLeftFunc(clean[len("```"):], isFenceTagRune)
	}
	clean = strings.TrimSuffix(strings.TrimSpace(clean), "```")
	return strings.TrimSpace(clean)
}

func isFenceTagRune(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' ||
		r == '-' || r == '+' || r == '_' || r == '.'
}
