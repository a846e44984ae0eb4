package http

import (
	"eisenhower-matrix/internal/model"
	"eisenhower-matrix/internal/wizard"
)

type answerReq struct {
	Text string `json:"text"`
	Yes  bool   `json:"yes"`
}

type recommendationResp struct {
	Quadrant string `json:"quadrant"`
	Reason   string `json:"reason"`
}

type stateResp struct {
	Step           string              `json:"step"`
	Title          string              `json:"title"`
	Description    string              `json:"description"`
	Project        string              `json:"project"`
	Recommendation *recommendationResp `json:"recommendation,omitempty"`
}

func newStateResp(st wizard.State) stateResp {
	resp := stateResp{
		Step:        string(st.Step),
		Title:       st.Draft.Title,
		Description: st.Draft.Description,
		Project:     st.Draft.Project,
	}
	if st.Recommendation != nil {
		resp.Recommendation = &recommendationResp{
			Quadrant: string(st.Recommendation.Quadrant),
			Reason:   st.Recommendation.Reason,
		}
	}
	return resp
}

type createResp struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Quadrant string `json:"quadrant"`
}

func newCreateResp(task model.Task) createResp {
	return createResp{
		ID:       task.ID,
		Title:    task.Title,
		Quadrant: string(task.Quadrant),
	}
}
