package oneroster

// Wire types for the narrow OneRoster surface this tool consumes.
// Fields not read by any caller are omitted rather than mirrored.

// Ref is a sourcedId reference to another resource.
type Ref struct {
	SourcedID string `json:"sourcedId"`
	Type      string `json:"type,omitempty"`
}

// User is a teacher or student record.
type User struct {
	SourcedID  string `json:"sourcedId"`
	GivenName  string `json:"givenName"`
	FamilyName string `json:"familyName"`
	Email      string `json:"email"`
	Role       string `json:"role,omitempty"`
}

// Class is a scheduled section of a course.
type Class struct {
	SourcedID string `json:"sourcedId"`
	Title     string `json:"title"`
	Course    Ref    `json:"course"`
}

// Category is a grading bucket line items are filed under.
type Category struct {
	SourcedID string `json:"sourcedId"`
	Title     string `json:"title"`
}

// GradingPeriod is an academic session grades are posted against.
type GradingPeriod struct {
	SourcedID string `json:"sourcedId"`
	Title     string `json:"title"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

// LineItem is one gradebook assignment column.
type LineItem struct {
	SourcedID      string         `json:"sourcedId"`
	Title          string         `json:"title"`
	Description    string         `json:"description,omitempty"`
	AssignDate     string         `json:"assignDate,omitempty"`
	DueDate        string         `json:"dueDate,omitempty"`
	Class          Ref            `json:"class"`
	Category       Ref            `json:"category,omitempty"`
	GradingPeriod  Ref            `json:"gradingPeriod,omitempty"`
	ResultValueMin float64        `json:"resultValueMin"`
	ResultValueMax float64        `json:"resultValueMax"`
	Metadata       map[string]any `json:"metadata,omitempty"`
}

// Result is one posted score for a student on a line item.
type Result struct {
	SourcedID   string  `json:"sourcedId"`
	LineItem    Ref     `json:"lineItem"`
	Student     Ref     `json:"student"`
	Score       float64 `json:"score"`
	ScoreStatus string  `json:"scoreStatus"`
	ScoreDate   string  `json:"scoreDate"`
	Comment     string  `json:"comment,omitempty"`
}

// Response envelopes. OneRoster wraps every payload in a collection or
// single-resource key.
type usersResponse struct {
	Users []User `json:"users"`
}

type classesResponse struct {
	Classes []Class `json:"classes"`
}

type categoriesResponse struct {
	Categories []Category `json:"categories"`
}

type gradingPeriodsResponse struct {
	GradingPeriods []GradingPeriod `json:"gradingPeriods"`
}

type lineItemsResponse struct {
	LineItems []LineItem `json:"lineItems"`
}

type lineItemResponse struct {
	LineItem LineItem `json:"lineItem"`
}

type lineItemRequest struct {
	LineItem LineItem `json:"lineItem"`
}

type resultRequest struct {
	Result Result `json:"result"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}
