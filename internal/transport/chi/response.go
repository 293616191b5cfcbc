package chi

import (
	"fmt"

	"github.com/kailas-cloud/cookbook/internal/domain/recipe"
	"github.com/kailas-cloud/cookbook/internal/domain/search/criteria"
)

// Error codes returned in errorResponse.Code.
const (
	codeBadRequest       = "bad_request"
	codeValidationFailed = "validation_failed"
	codeUnauthorized     = "unauthorized"
	codeRecipeNotFound   = "recipe_not_found"
	codeImageNotFound    = "image_not_found"
	codeRouteNotFound    = "not_found"
	codeMethodNotAllowed = "method_not_allowed"
	codeNotLoaded        = "catalog_not_loaded"
	codeLoadFailed       = "load_failed"
	codeRateLimited      = "rate_limited"
	codeInternal         = "internal_error"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type tagResponse struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

type cardResponse struct {
	ID       int           `json:"id"`
	Name     string        `json:"name"`
	Calories float64       `json:"calories"`
	Protein  float64       `json:"protein"`
	Tags     []tagResponse `json:"tags"`
	ImageURL string        `json:"image_url"`
}

type recipeResponse struct {
	cardResponse
	Ingredients []string `json:"ingredients"`
	Utensils    []string `json:"utensils"`
	Procedure   []string `json:"procedure"`
}

type recipeListResponse struct {
	Items []cardResponse `json:"items"`
	Total int            `json:"total"`
}

type tagListResponse struct {
	Items []tagResponse `json:"items"`
}

type criteriaResponse struct {
	Q        string         `json:"q"`
	Calories criteria.Range `json:"calories"`
	Protein  criteria.Range `json:"protein"`
	Tags     []string       `json:"tags"`
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

type reloadResponse struct {
	Recipes int `json:"recipes"`
	Tags    int `json:"tags"`
}

func imageURL(id int) string {
	return fmt.Sprintf("/images/%d", id)
}

func tagsToResponse(tags []string) []tagResponse {
	out := make([]tagResponse, len(tags))
	for i, t := range tags {
		out[i] = tagResponse{Name: t, Color: recipe.TagColor(t)}
	}
	return out
}

func cardToResponse(r recipe.Recipe) cardResponse {
	return cardResponse{
		ID:       r.ID(),
		Name:     r.Name(),
		Calories: r.Calories(),
		Protein:  r.Protein(),
		Tags:     tagsToResponse(r.Tags()),
		ImageURL: imageURL(r.ID()),
	}
}

func recipeToResponse(r recipe.Recipe) recipeResponse {
	return recipeResponse{
		cardResponse: cardToResponse(r),
		Ingredients:  nonNil(r.Ingredients()),
		Utensils:     nonNil(r.Utensils()),
		Procedure:    nonNil(r.Procedure()),
	}
}

func criteriaToResponse(c criteria.Criteria) criteriaResponse {
	return criteriaResponse{
		Q:        c.SearchText(),
		Calories: c.Calories(),
		Protein:  c.Protein(),
		Tags:     nonNil(c.SelectedTags()),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
