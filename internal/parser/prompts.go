package parser

import (
	"fmt"
	"strings"
)

const draftShape = `{"name": string, "calories": number, "protein": number, "fat": number, "carbs": number, ` +
	`"servings": number, "ingredients": [string], "instructions": [string], "type": "Breakfast"|"Lunch"|"Dinner"|"Snack"}`

const recipeImagePrompt = `You are a nutrition assistant for a low calorie diet.
Look at the photo. It is either a dish or a written recipe.
Extract one recipe and estimate calories and macros per serving in grams.
Keep each ingredient as a single human readable line with its quantity.
Respond ONLY with a JSON object of this shape: ` + draftShape

func recipeTextPrompt(text string) string {
	return fmt.Sprintf(`You are a nutrition assistant for a low calorie diet.
Extract one recipe from the text below and estimate calories and macros per serving in grams.
Keep each ingredient as a single human readable line with its quantity.
Respond ONLY with a JSON object of this shape: %s

Text:
%s`, draftShape, text)
}

func foodLogPrompt(text string) string {
	return fmt.Sprintf(`You are a nutrition assistant.
List every food or drink mentioned in the text below with an estimate of its calories for the amount described.
Respond ONLY with a JSON object of this shape: {"foods": [{"name": string, "calories": number}]}

Text:
%s`, text)
}

func ingredientsPrompt(lines []string) string {
	var sb strings.Builder
	for i, l := range lines {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, l)
	}
	return fmt.Sprintf(`Parse each numbered ingredient line for a shopping list.
Normalise the name to its singular grocery form without preparation words, keep the unit short (g, ml, tbsp, pcs) or empty.
Return exactly %d entries in the same order as the input.
Respond ONLY with a JSON object of this shape: {"ingredients": [{"original_text": string, "name": string, "quantity": number, "unit": string}]}

Lines:
%s`, len(lines), sb.String())
}
