package recipe

import (
	domrecipe "github.com/kailas-cloud/cookbook/internal/domain/recipe"
)

// recipeDTO is the wire shape of one element of the recipe document.
type recipeDTO struct {
	ID          int      `json:"id" validate:"gt=0"`
	Name        string   `json:"name" validate:"required"`
	Calories    *float64 `json:"calories" validate:"required,gte=0"`
	Protein     *float64 `json:"protein" validate:"required,gte=0"`
	Tags        []string `json:"tags" validate:"dive,required"`
	Ingredients []string `json:"ingredients"`
	Utensils    []string `json:"utensils"`
	Procedure   []string `json:"procedure"`
}

func (d *recipeDTO) toDomain() (domrecipe.Recipe, error) {
	return domrecipe.New( //nolint:wrapcheck // caller adds position context
		d.ID, d.Name, *d.Calories, *d.Protein,
		d.Tags, d.Ingredients, d.Utensils, d.Procedure,
	)
}

func fromDomain(r domrecipe.Recipe) recipeDTO {
	cal, prot := r.Calories(), r.Protein()
	return recipeDTO{
		ID:          r.ID(),
		Name:        r.Name(),
		Calories:    &cal,
		Protein:     &prot,
		Tags:        r.Tags(),
		Ingredients: r.Ingredients(),
		Utensils:    r.Utensils(),
		Procedure:   r.Procedure(),
	}
}
