package catalog

// Built-in datasets used whenever the configured content file is missing or
// malformed. Loaders fall back here with a logged warning so a broken content
// deploy degrades to sensible defaults instead of failing the session.

// ClothingSizes is the standard size run for apparel products.
var ClothingSizes = []string{"small", "medium", "large", "xl", "double xl"}

// DefaultProducts is the fallback shopping catalog.
var DefaultProducts = []Product{
	{
		ID:       "hoodie-001",
		Name:     "Black Oversized Hoodie",
		Price:    1199,
		Currency: "INR",
		Category: "hoodie",
		Color:    "black",
		Sizes:    ClothingSizes,
	},
	{
		ID:       "hoodie-002",
		Name:     "Blue Classic Hoodie",
		Price:    999,
		Currency: "INR",
		Category: "hoodie",
		Color:    "blue",
		Sizes:    ClothingSizes,
	},
	{
		ID:       "tee-001",
		Name:     "Dragon Print T-Shirt",
		Price:    699,
		Currency: "INR",
		Category: "tshirt",
		Color:    "black",
		Sizes:    ClothingSizes,
	},
	{
		ID:       "mug-001",
		Name:     "Stoneware Coffee Mug",
		Price:    499,
		Currency: "INR",
		Category: "mug",
		Color:    "white",
		Sizes:    []string{"free size"},
	},
	{
		ID:       "mug-002",
		Name:     "Dark Matte Coffee Mug",
		Price:    599,
		Currency: "INR",
		Category: "mug",
		Color:    "black",
		Sizes:    []string{"free size"},
	},
}

// DefaultFAQ is the fallback knowledge base for the lead qualification
// assistant, covering the questions visitors ask most.
var DefaultFAQ = []FAQEntry{
	{
		ID:       "what-is",
		Question: "What is PayLane and what does it do?",
		Answer:   "PayLane is a digital payments platform that lets businesses accept payments online and in store, send payouts, and track settlements from one dashboard.",
		Keywords: []string{"paylane", "about", "product", "platform", "what"},
	},
	{
		ID:       "who-for",
		Question: "Who is PayLane for?",
		Answer:   "PayLane serves everyone from solo sellers to large enterprises. Small teams usually start with payment links and the no-code checkout, while larger companies integrate the API.",
		Keywords: []string{"customers", "business", "merchants", "team", "startup", "enterprise"},
	},
	{
		ID:       "pricing",
		Question: "How much does PayLane cost?",
		Answer:   "There is no setup fee. PayLane charges a flat two percent per successful domestic transaction, with volume discounts once you cross ten lakh rupees a month.",
		Keywords: []string{"pricing", "price", "fees", "charges", "cost", "commission"},
	},
	{
		ID:       "security",
		Question: "Is PayLane secure?",
		Answer:   "Yes. PayLane is PCI DSS level one certified, encrypts card data end to end, and runs continuous fraud screening on every transaction.",
		Keywords: []string{"security", "secure", "safe", "fraud", "compliance", "pci"},
	},
	{
		ID:       "settlement",
		Question: "How fast are settlements?",
		Answer:   "Standard settlements land in your bank account within two business days. Instant settlement is available as a paid add-on.",
		Keywords: []string{"settlement", "payout", "bank", "transfer", "fast", "when"},
	},
	{
		ID:       "support",
		Question: "What support does PayLane offer?",
		Answer:   "Email and chat support are included on every plan, and annual plans add a dedicated account manager with phone support.",
		Keywords: []string{"support", "help", "contact", "manager", "phone"},
	},
}

// DefaultTopics is the fallback tutoring syllabus, intentionally an
// all-rounder mix rather than a single subject.
var DefaultTopics = []Topic{
	{
		ID:             "photosynthesis",
		Title:          "Photosynthesis",
		Summary:        "Photosynthesis is the process by which green plants use sunlight, water, and carbon dioxide to make their own food and release oxygen.",
		SampleQuestion: "Why do plants need sunlight for photosynthesis, and what gas do they release?",
	},
	{
		ID:             "fractions",
		Title:          "Fractions",
		Summary:        "Fractions represent a part of a whole. They have a numerator on top and a denominator on the bottom. For example, 1/2 means one part out of two equal parts.",
		SampleQuestion: "What do the numerator and denominator represent in a fraction like 3/4?",
	},
	{
		ID:             "worldwar2",
		Title:          "World War II",
		Summary:        "World War II was a global conflict from 1939 to 1945 involving many countries, with major events like the invasion of Poland, Pearl Harbor, and the atomic bombings of Japan.",
		SampleQuestion: "Name one major cause or event that contributed to the start of World War II.",
	},
	{
		ID:             "time_management",
		Title:          "Time Management",
		Summary:        "Time management is the practice of planning how to divide your time between activities so you can work smarter and reduce stress.",
		SampleQuestion: "What is one simple technique you can use to manage your time better during a busy day?",
	},
}
