package http

import (
	"tm-intent-classifier/internal/classify"
)

// --- Request DTOs ---

type classifyReq struct {
	Query string `json:"query" binding:"required,max=2000" example:"How do I submit my annual performance review?"`
}

func (r classifyReq) toInput() classify.ClassifyInput {
	return classify.ClassifyInput{Query: r.Query}
}

// --- Response DTOs ---

// linkResp is one help resource for the matched topic.
type linkResp struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// classifyResp is the wire shape of a classification verdict. This is the
// response body itself, not wrapped in the standard envelope: the contract
// fixes the top-level fields.
type classifyResp struct {
	IsTalentManagement bool       `json:"is_talent_management"`
	Confidence         float64    `json:"confidence"`
	Topic              string     `json:"topic"`
	TopicDisplayName   string     `json:"topic_display_name"`
	Links              []linkResp `json:"links"`
	Summary            string     `json:"summary"`
}

func (h *handler) newClassifyResp(out classify.ClassifyOutput) classifyResp {
	links := make([]linkResp, len(out.Links))
	for i, link := range out.Links {
		links[i] = linkResp{
			Title:       link.Title,
			URL:         link.URL,
			Description: link.Description,
		}
	}
	return classifyResp{
		IsTalentManagement: out.Result.IsTalentManagement,
		Confidence:         out.Result.Confidence,
		Topic:              out.Result.Topic,
		TopicDisplayName:   out.TopicDisplayName,
		Links:              links,
		Summary:            out.Summary,
	}
}
