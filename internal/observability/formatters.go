// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/Krithikeswaran/Hire-Me-AI-Powered-Resume-Analyser-sub001/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintAnalysis outputs a human-readable summary of a resume analysis.
func (p *Printer) PrintAnalysis(analysis *types.ResumeAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:        %3d  (%s)\n", analysis.OverallScore, analysis.Recommendation))
	sb.WriteString(fmt.Sprintf("Skills:         %3d\n", analysis.SkillsMatch))
	sb.WriteString(fmt.Sprintf("Experience:     %3d\n", analysis.ExperienceMatch))
	sb.WriteString(fmt.Sprintf("Education:      %3d\n", analysis.EducationMatch))
	sb.WriteString(fmt.Sprintf("Technical fit:  %3d\n", analysis.TechnicalFit))
	sb.WriteString("\n")

	appendList(&sb, "Strengths", analysis.Strengths)
	appendList(&sb, "Weaknesses", analysis.Weaknesses)
	appendList(&sb, "Missing skills", analysis.MissingSkills)

	p.printBox("Analysis: "+analysis.FileName, strings.TrimRight(sb.String(), "\n"))
}

// PrintProfile outputs a human-readable summary of an extracted profile.
func (p *Printer) PrintProfile(profile *types.CandidateProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	if profile.PersonalInfo.Name != "" {
		sb.WriteString(fmt.Sprintf("Name:      %s\n", profile.PersonalInfo.Name))
	}
	if profile.PersonalInfo.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:     %s\n", profile.PersonalInfo.Email))
	}
	if profile.PersonalInfo.Location != "" {
		sb.WriteString(fmt.Sprintf("Location:  %s\n", profile.PersonalInfo.Location))
	}
	sb.WriteString(fmt.Sprintf("Years:     %d\n", profile.TotalExperienceYears))
	sb.WriteString("\n")

	appendList(&sb, "Languages", profile.Skills.Languages)
	appendList(&sb, "Frameworks", profile.Skills.Frameworks)
	appendList(&sb, "Databases", profile.Skills.Databases)
	appendList(&sb, "Certifications", profile.Certifications)

	p.printBox("Profile: "+profile.FileName, strings.TrimRight(sb.String(), "\n"))
}

// PrintRanking outputs a human-readable comparative ranking.
func (p *Printer) PrintRanking(ranking *types.ComparativeRanking) {
	if ranking == nil {
		return
	}

	var sb strings.Builder
	for _, entry := range ranking.Rankings {
		sb.WriteString(fmt.Sprintf("%2d. %-28s %3d  %s\n", entry.Rank, entry.FileName, entry.OverallScore, entry.Recommendation))
	}
	if ranking.Summary != "" {
		sb.WriteString("\n")
		sb.WriteString(ranking.Summary)
	}

	p.printBox("Candidate Ranking", strings.TrimRight(sb.String(), "\n"))
}

// appendList writes a capped bullet list section.
func appendList(sb *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(title + ":\n")
	count := len(items)
	if count > maxItemsToShow {
		count = maxItemsToShow
	}
	for _, item := range items[:count] {
		sb.WriteString("  • " + item + "\n")
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
	sb.WriteString("\n")
}
