package feedback

import "fmt"

// Resume is the input to the resume suggestions
type Resume struct {
	JobRole         string
	GrammarScore    float64
	StructureScore  float64
	ATSScore        float64
	KeywordScore    float64
	WordCount       int
	MatchedKeywords int
}

// always-on tips closing every resume suggestion list
var resumeTips = []string{
	"Use action verbs to describe your achievements (e.g., 'Developed', 'Implemented', 'Led').",
	"Quantify your achievements with numbers and metrics where possible.",
}

// ForResume returns the ordered improvement suggestions for a resume
func ForResume(in Resume) []string {
	var out []string
	if in.GrammarScore < 80 {
		out = append(out, "Review grammar and spelling. Consider using a grammar checker.")
	}
	if in.StructureScore < 70 {
		out = append(out, "Expand your resume with more details about your experience and achievements.")
	}
	if in.KeywordScore < 60 {
		out = append(out, fmt.Sprintf("Add more %s-specific keywords and technical skills.", in.JobRole))
	}
	if in.ATSScore < 75 {
		out = append(out, "Use standard section headings (Experience, Education, Skills) for better ATS compatibility.")
	}
	if in.WordCount < 200 {
		out = append(out, "Your resume is too brief. Add more details about your accomplishments.")
	}
	if in.MatchedKeywords < 5 {
		out = append(out, "Include more industry-relevant keywords to pass ATS screening.")
	}
	return append(out, resumeTips...)
}
