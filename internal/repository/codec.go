package repository

import (
	"errors"

	"github.com/bytedance/sonic"

	"github.com/limbo/fast800/pkg/entity"
)

// plannedMealRecord is the jsonb shape of a single planned meal. Type tells the variants apart.
type plannedMealRecord struct {
	Type      entity.PlannedMealKind `json:"type"`
	RecipeID  string                 `json:"recipe_id,omitempty"`
	ID        string                 `json:"id,omitempty"`
	Name      string                 `json:"name,omitempty"`
	Calories  float64                `json:"calories,omitempty"`
	Protein   float64                `json:"protein,omitempty"`
	Fat       float64                `json:"fat,omitempty"`
	Carbs     float64                `json:"carbs,omitempty"`
	Tags      []string               `json:"tags,omitempty"`
	Servings  float64                `json:"servings"`
	Overrides *entity.MealOverrides  `json:"overrides,omitempty"`
}

func encodePlannedMeals(meals []entity.PlannedMeal) ([]byte, error) {
	records := make([]plannedMealRecord, 0, len(meals))
	for _, m := range meals {
		switch v := m.(type) {
		case entity.MealReference:
			records = append(records, plannedMealRecord{
				Type:      entity.PlannedMealReference,
				RecipeID:  v.RecipeID,
				ID:        v.InstanceID,
				Servings:  v.Servings,
				Overrides: v.Overrides,
			})
		case entity.CustomMeal:
			records = append(records, plannedMealRecord{
				Type:     entity.PlannedMealCustom,
				ID:       v.ID,
				Name:     v.Name,
				Calories: v.Calories,
				Protein:  v.Protein,
				Fat:      v.Fat,
				Carbs:    v.Carbs,
				Tags:     v.Tags,
				Servings: v.Servings,
			})
		default:
			return nil, errors.New("unknown planned meal variant")
		}
	}
	return sonic.Marshal(records)
}

func decodePlannedMeals(data []byte) ([]entity.PlannedMeal, error) {
	var records []plannedMealRecord
	if len(data) > 0 {
		if err := sonic.Unmarshal(data, &records); err != nil {
			return nil, errors.New("decoding planned meals error: " + err.Error())
		}
	}
	meals := make([]entity.PlannedMeal, 0, len(records))
	for _, r := range records {
		switch r.Type {
		case entity.PlannedMealReference:
			meals = append(meals, entity.MealReference{
				RecipeID:   r.RecipeID,
				InstanceID: r.ID,
				Servings:   r.Servings,
				Overrides:  r.Overrides,
			})
		case entity.PlannedMealCustom:
			meals = append(meals, entity.CustomMeal{
				ID:       r.ID,
				Name:     r.Name,
				Calories: r.Calories,
				Protein:  r.Protein,
				Fat:      r.Fat,
				Carbs:    r.Carbs,
				Tags:     r.Tags,
				Servings: r.Servings,
			})
		default:
			return nil, errors.New("unknown planned meal type: " + string(r.Type))
		}
	}
	return meals, nil
}

func decodeStrings(data []byte) ([]string, error) {
	out := []string{}
	if len(data) == 0 {
		return out, nil
	}
	if err := sonic.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []string{}
	}
	return out, nil
}

func encodeStrings(values []string) ([]byte, error) {
	if values == nil {
		values = []string{}
	}
	return sonic.Marshal(values)
}
