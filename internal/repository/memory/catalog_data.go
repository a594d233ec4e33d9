package memory

import "github.com/utafrali/mangomarket/internal/domain"

func seedProducts() []domain.Product {
	return []domain.Product{
		{
			ID: "alphonso-premium", Name: "Alphonso Premium",
			Description: "The king of mangoes. Rich, creamy flesh with a saffron hue and an unmistakable aroma.",
			Price:       2499, Image: "/images/mangoes/alphonso.jpg", Category: "Premium", Origin: "India",
			InStock: true, Rating: 4.8, ReviewCount: 124,
			NutritionalInfo: &domain.NutritionalInfo{Calories: 60, Protein: 0.8, Carbs: 15, Sugar: 13.7, Fiber: 1.6},
			StorageInfo:     "Ripen at room temperature, then refrigerate for up to 5 days.",
			Ripeness:        "Ready to eat",
		},
		{
			ID: "kesar-gold", Name: "Kesar Gold",
			Description: "Bright orange pulp with a sweet, saffron-like flavor from the Gir foothills.",
			Price:       2199, Image: "/images/mangoes/kesar.jpg", Category: "Premium", Origin: "India",
			InStock: true, Rating: 4.6, ReviewCount: 86,
			NutritionalInfo: &domain.NutritionalInfo{Calories: 62, Protein: 0.8, Carbs: 15.5, Sugar: 14, Fiber: 1.7},
			StorageInfo:     "Keep at room temperature until fragrant.",
			Ripeness:        "Ripe in 2-3 days",
		},
		{
			ID: "honey-mango", Name: "Honey Mango",
			Description: "Small, buttery and fiberless. Also sold as Ataulfo.",
			Price:       1299, Image: "/images/mangoes/honey.jpg", Category: "Classic", Origin: "Mexico",
			InStock: true, Rating: 4.3, ReviewCount: 67,
			NutritionalInfo: &domain.NutritionalInfo{Calories: 60, Protein: 0.8, Carbs: 15, Sugar: 14.8, Fiber: 1.6},
			StorageInfo:     "Ripe when the skin turns deep golden and wrinkles slightly.",
			Ripeness:        "Ready to eat",
		},
		{
			ID: "langra-special", Name: "Langra Special",
			Description: "Green-skinned even when ripe, with a tangy lemon-yellow flesh.",
			Price:       1899, Image: "/images/mangoes/langra.jpg", Category: "Exotic", Origin: "India",
			InStock: true, Rating: 4.5, ReviewCount: 42,
			StorageInfo: "Store at room temperature away from direct sunlight.",
			Ripeness:    "Ready to eat",
		},
		{
			ID: "kent-jumbo", Name: "Kent Jumbo",
			Description: "Large, juicy and low in fiber. Ideal for drying and juicing.",
			Price:       1599, Image: "/images/mangoes/kent.jpg", Category: "Classic", Origin: "Peru",
			InStock: true, Rating: 4.2, ReviewCount: 58,
			NutritionalInfo: &domain.NutritionalInfo{Calories: 65, Protein: 0.5, Carbs: 17, Sugar: 14.5, Fiber: 1.8},
			Ripeness:        "Ripe in 3-5 days",
		},
		{
			ID: "dasheri-sweet", Name: "Dasheri Sweet",
			Description: "Elongated north Indian variety with honey-sweet, aromatic flesh.",
			Price:       1999, Image: "/images/mangoes/dasheri.jpg", Category: "Premium", Origin: "India",
			InStock: true, Rating: 4.7, ReviewCount: 39,
			Ripeness: "Ready to eat",
		},
		{
			ID: "tommy-atkins", Name: "Tommy Atkins",
			Description: "The everyday supermarket mango. Firm, mild and long-lasting.",
			Price:       899, Image: "/images/mangoes/tommy.jpg", Category: "Classic", Origin: "USA",
			InStock: true, Rating: 3.9, ReviewCount: 95,
			NutritionalInfo: &domain.NutritionalInfo{Calories: 60, Protein: 0.8, Carbs: 15, Sugar: 13.7, Fiber: 1.6},
			StorageInfo:     "Keeps for up to a week at room temperature.",
			Ripeness:        "Ripe in 3-5 days",
		},
		{
			ID: "chaunsa-royal", Name: "Chaunsa Royal",
			Description: "Pakistan's prized summer mango with intensely sweet, aromatic juice.",
			Price:       2299, Image: "/images/mangoes/chaunsa.jpg", Category: "Premium", Origin: "Pakistan",
			InStock: false, Rating: 4.8, ReviewCount: 51,
			Ripeness: "Ready to eat",
		},
		{
			ID: "francis-organic", Name: "Francis Organic",
			Description: "Certified organic Haitian mango with spicy-sweet flavor.",
			Price:       1799, Image: "/images/mangoes/francis.jpg", Category: "Organic", Origin: "Haiti",
			InStock: true, Rating: 4.4, ReviewCount: 33,
			StorageInfo: "Ripen on the counter; refrigerate once soft.",
			Ripeness:    "Ripe in 2-3 days",
		},
		{
			ID: "amrapali-fusion", Name: "Amrapali Fusion",
			Description: "A Dasheri and Neelum hybrid with deep orange, very sweet flesh.",
			Price:       2099, Image: "/images/mangoes/amrapali.jpg", Category: "Exotic", Origin: "India",
			InStock: true, Rating: 4.6, ReviewCount: 28,
			Ripeness: "Ready to eat",
		},
		{
			ID: "keitt-late-season", Name: "Keitt Late Season",
			Description: "Stays green when ripe. Sweet and fruity, available into autumn.",
			Price:       1499, Image: "/images/mangoes/keitt.jpg", Category: "Classic", Origin: "USA",
			InStock: true, Rating: 4.1, ReviewCount: 22,
			Ripeness: "Ripe in 3-5 days",
		},
		{
			ID: "mallika-premium", Name: "Mallika Premium",
			Description: "Neelum and Dasheri cross with a balanced sweet-tangy taste.",
			Price:       2399, Image: "/images/mangoes/mallika.jpg", Category: "Premium", Origin: "India",
			InStock: true, Rating: 4.7, ReviewCount: 31,
			Ripeness: "Ready to eat",
		},
	}
}

func seedReviews() []domain.Review {
	return []domain.Review{
		{ID: "rev-001", ProductID: "alphonso-premium", UserName: "Sarah Johnson", Rating: 5, Comment: "The Alphonso mangoes were absolutely divine! Sweet, aromatic, and perfectly ripe when they arrived. Will definitely order again!", Date: "2023-06-15", Helpful: 24, Verified: true},
		{ID: "rev-002", ProductID: "alphonso-premium", UserName: "Michael Chen", Rating: 4, Comment: "Great quality mangoes with that distinctive Alphonso flavor. One of them was slightly bruised, but the rest were perfect.", Date: "2023-06-10", Helpful: 12, Verified: true},
		{ID: "rev-003", ProductID: "alphonso-premium", UserName: "Priya Patel", Rating: 5, Comment: "These remind me of the mangoes from my childhood in India. The flavor is unmatched! Worth every penny.", Date: "2023-05-28", Helpful: 31, Verified: true},
		{ID: "rev-004", ProductID: "kesar-gold", UserName: "David Wilson", Rating: 5, Comment: "My first time trying Kesar mangoes and I'm impressed! They have a unique flavor profile that's different from the Alphonso but equally delicious.", Date: "2023-06-12", Helpful: 18, Verified: true},
		{ID: "rev-005", ProductID: "kesar-gold", UserName: "Aisha Rahman", Rating: 4, Comment: "The Kesar mangoes were sweet and juicy. Great for making smoothies and desserts!", Date: "2023-06-05", Helpful: 9, Verified: true},
		{ID: "rev-006", ProductID: "honey-mango", UserName: "Carlos Rodriguez", Rating: 5, Comment: "These small honey mangoes pack a big punch of flavor! Perfect for snacking and the kids love them.", Date: "2023-06-08", Helpful: 14, Verified: true},
		{ID: "rev-007", ProductID: "honey-mango", UserName: "Emma Thompson", Rating: 3, Comment: "The mangoes were good, but a bit smaller than I expected. Flavor was nice though.", Date: "2023-05-30", Helpful: 6, Verified: true},
		{ID: "rev-008", ProductID: "langra-special", UserName: "Raj Sharma", Rating: 5, Comment: "Langra mangoes have always been my favorite, and these did not disappoint! The aroma alone is worth it.", Date: "2023-06-14", Helpful: 22, Verified: true},
		{ID: "rev-009", ProductID: "kent-jumbo", UserName: "Lisa Garcia", Rating: 4, Comment: "These Kent mangoes are huge! One mango was enough for our family of four. Very juicy and minimal fiber.", Date: "2023-06-11", Helpful: 15, Verified: true},
		{ID: "rev-010", ProductID: "dasheri-sweet", UserName: "Ahmed Hassan", Rating: 5, Comment: "Dasheri mangoes have such a distinctive sweet taste. These were perfectly ripened and absolutely delicious.", Date: "2023-06-02", Helpful: 19, Verified: true},
		{ID: "rev-011", ProductID: "tommy-atkins", UserName: "Jennifer Lee", Rating: 3, Comment: "These are good everyday mangoes, but not as flavorful as some of the premium varieties. Good value though.", Date: "2023-06-07", Helpful: 8, Verified: true},
		{ID: "rev-012", ProductID: "chaunsa-royal", UserName: "Omar Khan", Rating: 5, Comment: "Chaunsa mangoes are a hidden gem! So aromatic and sweet. Will definitely buy again.", Date: "2023-06-09", Helpful: 27, Verified: true},
		{ID: "rev-013", ProductID: "francis-organic", UserName: "Sophia Martinez", Rating: 4, Comment: "Love that these are organic. The flavor is rich and they ripened beautifully on my counter.", Date: "2023-06-01", Helpful: 11, Verified: true},
		{ID: "rev-014", ProductID: "amrapali-fusion", UserName: "Vikram Singh", Rating: 5, Comment: "Amrapali has such a unique flavor profile! These were perfectly ripe and incredibly sweet.", Date: "2023-06-13", Helpful: 16, Verified: true},
		{ID: "rev-015", ProductID: "keitt-late-season", UserName: "Rebecca Johnson", Rating: 4, Comment: "Great to find mangoes this late in the season! They were firm but ripened well after a few days.", Date: "2023-06-16", Helpful: 7, Verified: true},
		{ID: "rev-016", ProductID: "mallika-premium", UserName: "Sanjay Patel", Rating: 5, Comment: "Mallika mangoes have the perfect balance of sweetness and tanginess. These were exceptional quality!", Date: "2023-06-04", Helpful: 21, Verified: true},
	}
}
