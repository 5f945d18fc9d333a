package catalog

// Demo is the set of places seeded into an empty catalog on first run.
var Demo = []Place{
	{Name: "Sakura Sushi Bar", Cuisine: "Japanese", Address: "12 Harbor St", Rating: 4.6, Reviews: 1284, X: 0.18, Y: 0.22},
	{Name: "La Piazza", Cuisine: "Italian", Address: "40 Market Sq", Rating: 4.3, Reviews: 862, X: 0.52, Y: 0.30},
	{Name: "Taqueria El Sol", Cuisine: "Mexican", Address: "7 Sunset Ave", Rating: 4.7, Reviews: 2310, X: 0.76, Y: 0.18},
	{Name: "Pho Saigon", Cuisine: "Vietnamese", Address: "221 Lotus Rd", Rating: 4.4, Reviews: 540, X: 0.34, Y: 0.48},
	{Name: "Green Bowl", Cuisine: "Vegan", Address: "3 Garden Ln", Rating: 4.1, Reviews: 197, X: 0.64, Y: 0.55},
	{Name: "Le Petit Bistro", Cuisine: "French", Address: "18 Rue Neuve", Rating: 4.8, Reviews: 1045, X: 0.10, Y: 0.62},
	{Name: "Spice Route", Cuisine: "Indian", Address: "95 Curry Row", Rating: 4.5, Reviews: 1712, X: 0.86, Y: 0.42},
	{Name: "Dragon Dumplings", Cuisine: "Chinese", Address: "66 Lantern St", Rating: 4.2, Reviews: 3098, X: 0.45, Y: 0.12},
	{Name: "Seoul Grill", Cuisine: "Korean", Address: "9 Hanok Way", Rating: 4.6, Reviews: 745, X: 0.25, Y: 0.80},
	{Name: "Mezze House", Cuisine: "Lebanese", Address: "150 Cedar Blvd", Rating: 4.4, Reviews: 388, X: 0.70, Y: 0.78},
	{Name: "Burger Foundry", Cuisine: "American", Address: "2 Forge St", Rating: 3.9, Reviews: 4521, X: 0.92, Y: 0.88},
	{Name: "Nordic Bakery", Cuisine: "Bakery", Address: "31 Fjord Pl", Rating: 4.7, Reviews: 623, X: 0.56, Y: 0.92},
}
