package dto

import "github.com/bodmaslab/bodmas-master/internal/solver"

type SolveRequest struct {
	Expression string `json:"expression"`
}

type SolveResponse struct {
	Success    bool    `json:"success"`
	Expression string  `json:"expression"`
	Answer     float64 `json:"answer"`
	Steps      []Step  `json:"steps"`
}

// Step is one line of the worked solution.
type Step struct {
	Step        int     `json:"step"`
	Expression  string  `json:"expression"`
	Description string  `json:"description"`
	Operator    string  `json:"operator"`
	Left        float64 `json:"left"`
	Right       float64 `json:"right"`
	Result      float64 `json:"result"`
}

func NewSolveResponse(solution *solver.Solution) SolveResponse {
	return SolveResponse{
		Success:    true,
		Expression: solution.Expression,
		Answer:     solution.Value,
		Steps:      NewSteps(solution.Steps),
	}
}

func NewSteps(steps []solver.Step) []Step {
	out := make([]Step, 0, len(steps))
	for _, s := range steps {
		out = append(out, Step{
			Step:        s.Index,
			Expression:  s.Expression,
			Description: s.Description,
			Operator:    s.Op.String(),
			Left:        s.Left,
			Right:       s.Right,
			Result:      s.Result,
		})
	}
	return out
}
