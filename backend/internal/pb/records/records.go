package records

// Actor identifies the caller on whose behalf an operation runs.
type Actor struct {
	Role      string `json:"role"`
	StudentId string `json:"student_id,omitempty"`
}

// CourseResult is a single uploaded course result.
type CourseResult struct {
	Course string  `json:"course"`
	Units  int32   `json:"units"`
	Score  float64 `json:"score"`
	Point  float64 `json:"point"`
	Grade  string  `json:"grade"`
}

// LevelResults is the ordered list of results for one level.
type LevelResults struct {
	Level   string          `json:"level"`
	Courses []*CourseResult `json:"courses"`
}

// Student is a student record without its password.
type Student struct {
	Id         string          `json:"id"`
	Name       string          `json:"name"`
	Level      string          `json:"level"`
	Department string          `json:"department"`
	Results    []*LevelResults `json:"results"`
}

// LevelGPA is the GPA of one non-empty level.
type LevelGPA struct {
	Level       string  `json:"level"`
	Gpa         float64 `json:"gpa"`
	Units       int32   `json:"units"`
	GradePoints float64 `json:"grade_points"`
	Courses     int32   `json:"courses"`
}

// Summary is the academic summary of a student.
type Summary struct {
	Levels           []*LevelGPA `json:"levels"`
	Cgpa             float64     `json:"cgpa"`
	TotalUnits       int32       `json:"total_units"`
	TotalGradePoints float64     `json:"total_grade_points"`
}

type RegisterStudentRequest struct {
	Actor      *Actor `json:"actor"`
	Id         string `json:"id"`
	Name       string `json:"name"`
	Level      string `json:"level"`
	Department string `json:"department"`
}

type RegisterStudentResponse struct {
	Student *Student `json:"student"`
}

type GetStudentRequest struct {
	Actor *Actor `json:"actor"`
	Id    string `json:"id"`
}

type GetStudentResponse struct {
	Student *Student `json:"student"`
}

type ListStudentsRequest struct {
	Actor *Actor `json:"actor"`
}

type ListStudentsResponse struct {
	Students []*Student `json:"students"`
}

type DeleteStudentRequest struct {
	Actor *Actor `json:"actor"`
	Id    string `json:"id"`
}

type DeleteStudentResponse struct {
	Id string `json:"id"`
}

type UploadResultRequest struct {
	Actor  *Actor  `json:"actor"`
	Id     string  `json:"id"`
	Level  string  `json:"level"`
	Course string  `json:"course"`
	Units  int32   `json:"units"`
	Score  float64 `json:"score"`
}

type UploadResultResponse struct {
	Id     string        `json:"id"`
	Level  string        `json:"level"`
	Result *CourseResult `json:"result"`
}

type DeleteResultRequest struct {
	Actor *Actor `json:"actor"`
	Id    string `json:"id"`
	Level string `json:"level"`
	Index int32  `json:"index"`
}

type DeleteResultResponse struct {
	Removed *CourseResult `json:"removed"`
}

type VerifyCredentialsRequest struct {
	Id       string `json:"id"`
	Password string `json:"password"`
}

type VerifyCredentialsResponse struct {
	Valid bool `json:"valid"`
}

type GetTranscriptRequest struct {
	Actor *Actor `json:"actor"`
	Id    string `json:"id"`
}

type GetTranscriptResponse struct {
	Student *Student `json:"student"`
	Summary *Summary `json:"summary"`
}
