package store

import (
	"app/internal/domain/model"

	"github.com/shopspring/decimal"
)

// DemoCatalog は起動時に投入するデモ商品。外部取得はしない。
func DemoCatalog() []model.Product {
	return []model.Product{
		{
			ID:          1,
			Name:        "Pro Basketball",
			Price:       decimal.RequireFromString("89.99"),
			Category:    "Basketball",
			Image:       "/basketball.jpg",
			Description: "Professional grade basketball with superior grip and durability. Perfect for indoor and outdoor courts.",
			Features:    []string{"Official size and weight", "Superior grip", "Durable composite leather", "Suitable for indoor and outdoor use"},
			InStock:     true,
		},
		{
			ID:          2,
			Name:        "Running Shoes Elite",
			Price:       decimal.RequireFromString("129.99"),
			Category:    "Footwear",
			Image:       "/running-shoes.jpg",
			Description: "Lightweight running shoes with responsive cushioning for maximum comfort during long runs.",
			Features:    []string{"Breathable mesh upper", "Responsive cushioning", "Durable rubber outsole", "Reflective details"},
			InStock:     true,
		},
		{
			ID:          3,
			Name:        "Tennis Racket Pro",
			Price:       decimal.RequireFromString("159.99"),
			Category:    "Tennis",
			Image:       "/tennis-racket.jpg",
			Description: "Professional tennis racket with optimal balance of power and control.",
			Features:    []string{"Lightweight frame", "Large sweet spot", "Vibration dampening", "Includes protective cover"},
			InStock:     true,
		},
		{
			ID:          4,
			Name:        "Fitness Tracker Plus",
			Price:       decimal.RequireFromString("79.99"),
			Category:    "Electronics",
			Image:       "/fitness-tracker.jpg",
			Description: "Advanced fitness tracker with heart rate monitoring and GPS tracking.",
			Features:    []string{"Heart rate monitor", "GPS tracking", "Sleep analysis", "Waterproof design", "7-day battery life"},
			InStock:     true,
		},
		{
			ID:          5,
			Name:        "Premium Yoga Mat",
			Price:       decimal.RequireFromString("45.99"),
			Category:    "Yoga",
			Image:       "/yoga-mat.jpg",
			Description: "Extra thick yoga mat with non-slip surface for stability and comfort during practice.",
			Features:    []string{"6mm thickness", "Non-slip texture", "Eco-friendly materials", "Includes carrying strap"},
			InStock:     true,
		},
		{
			ID:          6,
			Name:        "Mountain Bike Pro",
			Price:       decimal.RequireFromString("899.99"),
			Category:    "Cycling",
			Image:       "/mountain-bike.jpg",
			Description: "High-performance mountain bike with front suspension and premium components.",
			Features:    []string{"Aluminum frame", "Front suspension", "21 speeds", "Disc brakes", "All-terrain tires"},
			InStock:     false,
		},
		{
			ID:          7,
			Name:        "Soccer Ball Elite",
			Price:       decimal.RequireFromString("49.99"),
			Category:    "Soccer",
			Image:       "/soccer-ball.jpg",
			Description: "Professional soccer ball with excellent flight stability and durability.",
			Features:    []string{"Size 5 official", "Hand-stitched panels", "Water-resistant surface", "Enhanced visibility design"},
			InStock:     true,
		},
		{
			ID:          8,
			Name:        "Weightlifting Gloves",
			Price:       decimal.RequireFromString("34.99"),
			Category:    "Fitness",
			Image:       "/weightlifting-gloves.jpg",
			Description: "Premium weightlifting gloves with wrist support for maximum protection and grip.",
			Features:    []string{"Reinforced palm", "Adjustable wrist support", "Breathable material", "Anti-slip grip"},
			InStock:     true,
		},
	}
}
