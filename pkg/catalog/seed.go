package catalog

import "floraform.ca/storefront/pkg/models"

// Categories shown in the storefront filter bar, "All" first.
var Categories = []string{
	AllCategories,
	"Indoor Plants",
	"Outdoor Plants",
	"Succulents",
	"Flowering Plants",
}

// SeedProducts is the initial plant catalog, inserted into the products
// collection on first startup.
var SeedProducts = []models.Product{
	{
		ID:          1,
		Name:        "Monstera Deliciosa",
		Price:       45.00,
		Description: "The iconic Swiss cheese plant with dramatic split leaves. A fast grower that brings instant jungle vibes to any room.",
		Category:    "Indoor Plants",
		ImageURL:    "/images/monstera-deliciosa.jpg",
		Details: models.PlantDetails{
			Size:  "Medium, 60-80cm tall",
			Light: "Bright, indirect light",
			Water: "Weekly, let topsoil dry out between waterings",
		},
	},
	{
		ID:          2,
		Name:        "Snake Plant",
		Price:       28.50,
		Description: "Nearly indestructible architectural plant with upright sword-like leaves. Tolerates neglect and low light.",
		Category:    "Indoor Plants",
		ImageURL:    "/images/snake-plant.jpg",
		Details: models.PlantDetails{
			Size:  "Small to medium, 30-60cm tall",
			Light: "Low to bright, indirect light",
			Water: "Every 2-3 weeks, drought tolerant",
		},
	},
	{
		ID:          3,
		Name:        "Fiddle Leaf Fig",
		Price:       65.00,
		Description: "A statement tree with large violin-shaped leaves. Rewards a consistent routine with vigorous growth.",
		Category:    "Indoor Plants",
		ImageURL:    "/images/fiddle-leaf-fig.jpg",
		Details: models.PlantDetails{
			Size:  "Large, 90-120cm tall",
			Light: "Bright, indirect light near a window",
			Water: "Weekly, when the top 5cm of soil is dry",
		},
	},
	{
		ID:          4,
		Name:        "Echeveria Elegans",
		Price:       12.50,
		Description: "A compact rosette succulent with powdery blue-green leaves. Perfect for sunny windowsills and desktops.",
		Category:    "Succulents",
		ImageURL:    "/images/echeveria-elegans.jpg",
		Details: models.PlantDetails{
			Size:  "Small, 10-15cm wide",
			Light: "Full sun to bright light",
			Water: "Sparingly, soak and dry method",
		},
	},
	{
		ID:          5,
		Name:        "Jade Plant",
		Price:       18.00,
		Description: "A long-lived succulent with plump oval leaves, said to bring good fortune. Slow growing and undemanding.",
		Category:    "Succulents",
		ImageURL:    "/images/jade-plant.jpg",
		Details: models.PlantDetails{
			Size:  "Small, 20-30cm tall",
			Light: "Bright light with some direct sun",
			Water: "Every 2 weeks, less in winter",
		},
	},
	{
		ID:          6,
		Name:        "Lavender",
		Price:       16.75,
		Description: "Fragrant Mediterranean herb with silvery foliage and purple flower spikes. Loved by bees and for calming scent.",
		Category:    "Outdoor Plants",
		ImageURL:    "/images/lavender.jpg",
		Details: models.PlantDetails{
			Size:  "Medium, 40-60cm tall",
			Light: "Full sun",
			Water: "Weekly until established, then drought tolerant",
		},
	},
	{
		ID:          7,
		Name:        "Hydrangea",
		Price:       32.00,
		Description: "Showy shrub with generous mophead blooms that shift colour with soil pH. A garden classic for shaded borders.",
		Category:    "Outdoor Plants",
		ImageURL:    "/images/hydrangea.jpg",
		Details: models.PlantDetails{
			Size:  "Large, 80-120cm tall",
			Light: "Morning sun, afternoon shade",
			Water: "Deeply, 2-3 times per week in summer",
		},
	},
	{
		ID:          8,
		Name:        "Peace Lily",
		Price:       24.00,
		Description: "Elegant white spathes above glossy dark leaves. One of the best plants for low-light corners, and it droops to tell you it is thirsty.",
		Category:    "Flowering Plants",
		ImageURL:    "/images/peace-lily.jpg",
		Details: models.PlantDetails{
			Size:  "Medium, 40-60cm tall",
			Light: "Low to medium, indirect light",
			Water: "Weekly, keep soil lightly moist",
		},
	},
	{
		ID:          9,
		Name:        "Phalaenopsis Orchid",
		Price:       38.50,
		Description: "The moth orchid, with arching sprays of long-lasting blooms. More forgiving than its reputation suggests.",
		Category:    "Flowering Plants",
		ImageURL:    "/images/phalaenopsis-orchid.jpg",
		Details: models.PlantDetails{
			Size:  "Small, 30-50cm tall",
			Light: "Bright, indirect light, no direct sun",
			Water: "Weekly, water thoroughly and drain",
		},
	},
	{
		ID:          10,
		Name:        "Pothos Golden",
		Price:       19.25,
		Description: "Trailing vine with marbled golden leaves that thrives almost anywhere. Ideal first plant and prolific propagator.",
		Category:    "Indoor Plants",
		ImageURL:    "/images/pothos-golden.jpg",
		Details: models.PlantDetails{
			Size:  "Trailing, vines to 2m+",
			Light: "Low to bright, indirect light",
			Water: "Every 1-2 weeks, let soil dry out",
		},
	},
}
