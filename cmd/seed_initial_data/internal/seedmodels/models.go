package seedmodels

// SeedExamQuestion defines one exam question in the JSON seed file. Radio
// questions carry options and correct_option_index, text questions carry
// correct_answer.
type SeedExamQuestion struct {
	Type               string   `json:"type"`
	Text               string   `json:"text"`
	Options            []string `json:"options,omitempty"`
	CorrectAnswer      string   `json:"correct_answer,omitempty"`
	CorrectOptionIndex int      `json:"correct_option_index,omitempty"`
}

// SeedExam defines one exam in the JSON seed file. Question numbers are
// assigned from array order, starting at 1.
type SeedExam struct {
	Slug        string             `json:"slug"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	HTMLContent string             `json:"html_content"`
	Questions   []SeedExamQuestion `json:"questions"`
}

// SeedMaterial defines one learning material in the JSON seed file.
type SeedMaterial struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ContentHTML string `json:"content_html"`
}

// SeedMissionQuestion defines one mission question in the JSON seed file.
type SeedMissionQuestion struct {
	Text               string   `json:"text"`
	Options            []string `json:"options"`
	CorrectOptionIndex int      `json:"correct_option_index"`
}

// SeedMission defines one mission in the JSON seed file.
type SeedMission struct {
	Slug        string                `json:"slug"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Questions   []SeedMissionQuestion `json:"questions"`
}

// SeedContent is the root of the JSON seed file. Order within each list
// fixes the display and progression order.
type SeedContent struct {
	Exams     []SeedExam     `json:"exams"`
	Materials []SeedMaterial `json:"materials"`
	Missions  []SeedMission  `json:"missions"`
}
