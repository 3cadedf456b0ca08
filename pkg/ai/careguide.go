package ai

import (
	"context"
	"fmt"
)

const careGuideSystemPrompt = `You are a horticulture expert writing care guides for a plant store.
Generate simple, easy-to-follow guides formatted in markdown.
Cover exactly these topics: Light, Water, Soil, and Fertilizer.
Use a level 3 markdown heading (###) for each topic.
Do not include any introductory or concluding sentences, just the guide itself.`

// fallbackCareGuide is served when the AI service is not configured, so
// the detail page always has something to show.
const fallbackCareGuide = `### Light
Place your plant in a location with bright, indirect sunlight. Avoid direct sun as it can scorch the leaves.

### Water
Water every 1-2 weeks, allowing the soil to dry out between waterings. Ensure the pot has good drainage to prevent root rot.

### Soil
Use a well-draining potting mix. A mixture of peat, pine bark, and perlite is ideal for this type of plant.

### Fertilizer
Feed with a balanced liquid fertilizer every 4-6 weeks during the growing season (spring and summer).`

// CareGuideResponse carries the generated guide plus whether it came from
// the AI service or the canned fallback.
type CareGuideResponse struct {
	PlantName string `json:"plant_name"`
	Guide     string `json:"guide"`
	AIEnabled bool   `json:"ai_enabled"`
}

// GenerateCareGuide produces a markdown care guide for the named plant.
// When the AI service is disabled or errors, the canned guide is returned
// instead of failing the request.
func GenerateCareGuide(ctx context.Context, plantName string) *CareGuideResponse {
	response := &CareGuideResponse{
		PlantName: plantName,
		AIEnabled: IsEnabled(),
	}

	if !IsEnabled() {
		response.Guide = fallbackCareGuide
		return response
	}

	prompt := fmt.Sprintf("Generate a plant care guide for a %s.", plantName)
	guide, err := generateCompletion(ctx, careGuideSystemPrompt, prompt)
	if err != nil {
		response.Guide = fallbackCareGuide
		response.AIEnabled = false
		return response
	}

	response.Guide = guide
	return response
}
