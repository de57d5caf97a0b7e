package formatter

import (
	"fmt"
	"strings"

	"github.com/sofiebrandt/prepdeck/internal/domain"
)

// FormatAnalysis renders structured feedback for a practice run. scaleMax is
// the top of the scoring scale the analysis was produced on.
func FormatAnalysis(result *domain.AnalysisResult, scaleMax int) string {
	var b strings.Builder

	b.WriteString(Header("Feedback") + "\n\n")
	b.WriteString(Bold("Score: ") + ScoreBadge(result.UserScore, scaleMax) + "\n\n")

	if len(result.Strengths) > 0 {
		b.WriteString(StyleGreen.Render("Strengths") + "\n")
		b.WriteString(BulletList(result.Strengths, StyleGreen))
		b.WriteString("\n")
	}
	if len(result.Improvements) > 0 {
		b.WriteString(StyleYellow.Render("Improvements") + "\n")
		b.WriteString(BulletList(result.Improvements, StyleYellow))
		b.WriteString("\n")
	}
	if len(result.Suggestions) > 0 {
		b.WriteString(StyleBlue.Render("Suggestions") + "\n")
		b.WriteString(BulletList(result.Suggestions, StyleBlue))
		b.WriteString("\n")
	}

	if result.DetailedFeedback != "" {
		b.WriteString(Bold("Detailed feedback") + "\n")
		b.WriteString(StyleFg.Render(result.DetailedFeedback) + "\n")
	}

	if result.OptimalAnswer != "" {
		b.WriteString("\n" + RenderBox("Reference answer", StyleFg.Render(result.OptimalAnswer)) + "\n")
	}

	return b.String()
}

// FormatCaseStudy renders a generated scenario for the Question step.
func FormatCaseStudy(cs *domain.CaseStudyDetails) string {
	var b strings.Builder

	b.WriteString(StyleHeader.Render(cs.Title) + "\n\n")

	if cs.Company != "" {
		meta := cs.Company
		if cs.Industry != "" {
			meta += " · " + cs.Industry
		}
		if cs.CompanySize != "" {
			meta += " · " + cs.CompanySize
		}
		b.WriteString(Dim(meta) + "\n\n")
	}

	b.WriteString(Bold("Challenge") + "\n" + StyleFg.Render(cs.Challenge) + "\n")
	if cs.DetailedChallenge != "" {
		b.WriteString("\n" + StyleFg.Render(cs.DetailedChallenge) + "\n")
	}

	if len(cs.Stakeholders) > 0 {
		b.WriteString("\n" + Bold("Stakeholders") + "\n" + BulletList(cs.Stakeholders, StyleBlue))
	}
	if len(cs.Constraints) > 0 {
		b.WriteString("\n" + Bold("Constraints") + "\n" + BulletList(cs.Constraints, StyleYellow))
	}
	if len(cs.Objectives) > 0 {
		b.WriteString("\n" + Bold("Objectives") + "\n" + BulletList(cs.Objectives, StyleGreen))
	}
	if cs.Timeframe != "" {
		b.WriteString("\n" + Bold("Timeframe: ") + StyleFg.Render(cs.Timeframe) + "\n")
	}

	return RenderBox("Case study", b.String())
}

// FormatQuestionList renders stored questions as an aligned table.
func FormatQuestionList(questions []*domain.Question) string {
	if len(questions) == 0 {
		return Dim("No questions found.")
	}

	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Questions (%d)", len(questions))) + "\n")
	for _, q := range questions {
		b.WriteString(fmt.Sprintf("%s  %-14s %-8s %s  %s\n",
			TruncID(q.ID),
			StylePurple.Render(q.Topic),
			LevelBadge(q.ExperienceLevel),
			SourceBadge(q.Source),
			StyleFg.Render(Truncate(q.Text, 70)),
		))
	}
	return b.String()
}

// FormatSharedAnswers renders the shared answers for one question.
func FormatSharedAnswers(answers []*domain.SharedAnswer) string {
	if len(answers) == 0 {
		return Dim("No shared answers yet.")
	}

	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Shared answers (%d)", len(answers))) + "\n")
	for _, a := range answers {
		score := Dim("unscored")
		if a.Score != nil {
			score = ScoreBadge(*a.Score, 10)
		}
		b.WriteString(fmt.Sprintf("\n%s %s · %s\n", Bold(a.Author), score, Dim(HumanDate(a.CreatedAt))))
		b.WriteString(StyleFg.Render(a.Text) + "\n")
	}
	return b.String()
}
