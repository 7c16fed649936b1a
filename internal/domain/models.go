package domain

import "encoding/json"

// Employee is a single record returned by the search endpoint
type Employee struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Department string   `json:"department"`
	Years      int      `json:"years"`
	JoinDate   string   `json:"joinDate"`
	Skills     []string `json:"skills"` // endpoint order, never re-sorted
	Role       string   `json:"role"`
}

// UnmarshalJSON accepts the older yearsOfExperience key when years is absent.
func (e *Employee) UnmarshalJSON(data []byte) error {
	type plain Employee
	var aux struct {
		plain
		Years             *int `json:"years"`
		YearsOfExperience *int `json:"yearsOfExperience"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	*e = Employee(aux.plain)
	switch {
	case aux.Years != nil:
		e.Years = *aux.Years
	case aux.YearsOfExperience != nil:
		e.Years = *aux.YearsOfExperience
	}
	if e.Years < 0 {
		e.Years = 0
	}
	return nil
}

// SearchResult is the decoded body of a successful search response
type SearchResult struct {
	Employees []Employee `json:"employees"`
	Summary   string     `json:"summary"`
	Count     int        `json:"count,omitempty"` // informational, sent by some backends
}
