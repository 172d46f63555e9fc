package risk

// DefaultTables returns a fresh copy of the built-in knowledge tables.
// Keywords inside the peanut groups never contain one another, so a single
// "peanut butter" mention yields one finding for a peanut allergy.
func DefaultTables() Tables {
	return Tables{
		AllergenGroups: map[string][]string{
			"nuts":      {"nut", "peanut", "almond", "walnut", "cashew", "pistachio", "hazelnut", "pecan", "macadamia"},
			"peanuts":   {"peanut", "groundnut", "arachis oil", "monkey nut"},
			"peanut":    {"peanut", "groundnut", "arachis oil", "monkey nut"},
			"tree nuts": {"almond", "walnut", "cashew", "pistachio", "hazelnut", "pecan", "macadamia", "brazil nut"},
			"dairy":     {"milk", "cheese", "butter", "cream", "whey", "casein", "lactose", "yogurt", "ghee"},
			"milk":      {"milk", "cheese", "butter", "cream", "whey", "casein", "lactose", "yogurt", "ghee"},
			"eggs":      {"egg", "albumin", "mayonnaise", "meringue"},
			"egg":       {"egg", "albumin", "mayonnaise", "meringue"},
			"gluten":    {"wheat", "gluten", "barley", "rye", "malt", "semolina", "spelt"},
			"wheat":     {"wheat", "semolina", "spelt", "durum"},
			"soy":       {"soy", "soya", "edamame", "tofu", "tempeh"},
			"shellfish": {"shrimp", "prawn", "crab", "lobster", "shellfish", "scallop", "clam", "mussel", "oyster"},
			"fish":      {"fish", "salmon", "tuna", "cod", "anchovy", "sardine", "tilapia"},
			"sesame":    {"sesame", "tahini"},
			"mustard":   {"mustard"},
			"sulfites":  {"sulfite", "sulphite", "sulfur dioxide"},
		},
		Diseases: map[string]DiseaseRule{
			"diabetes": {
				Avoid:               []string{"sugar", "corn syrup", "white bread", "soda", "candy"},
				Limit:               []string{"glucose syrup", "honey", "dried fruit", "fruit juice", "carbohydrates", "white rice"},
				Consequence:         "Can cause rapid blood sugar spikes",
				LongTermConsequence: "Poor glycemic control raises the risk of nerve, kidney and eye damage",
			},
			"hypertension": {
				Avoid:               []string{"sodium", "salt", "msg", "pickled", "processed meat"},
				Limit:               []string{"caffeine", "alcohol", "licorice"},
				Consequence:         "Can raise blood pressure",
				LongTermConsequence: "Sustained high blood pressure strains the heart and increases stroke risk",
			},
			"kidney disease": {
				Avoid:               []string{"sodium", "potassium", "phosphorus", "phosphate"},
				Limit:               []string{"protein", "banana", "potato", "tomato"},
				Consequence:         "Adds load the kidneys cannot clear efficiently",
				LongTermConsequence: "Mineral build-up can accelerate loss of kidney function",
			},
			"heart disease": {
				Avoid:               []string{"trans fat", "hydrogenated", "sodium"},
				Limit:               []string{"saturated fat", "cholesterol", "red meat", "butter"},
				Consequence:         "Can raise cholesterol and blood pressure",
				LongTermConsequence: "Contributes to plaque build-up in the arteries",
			},
			"high cholesterol": {
				Avoid:               []string{"trans fat", "hydrogenated"},
				Limit:               []string{"saturated fat", "fat", "egg yolk", "butter", "cheese"},
				Consequence:         "Can raise LDL cholesterol",
				LongTermConsequence: "Elevated LDL increases the risk of heart attack",
			},
			"celiac disease": {
				Avoid:               []string{"gluten", "wheat", "barley", "rye", "malt"},
				Limit:               []string{"oats"},
				Consequence:         "Triggers an immune reaction that damages the small intestine",
				LongTermConsequence: "Repeated exposure can cause malabsorption and anaemia",
			},
			"gout": {
				Avoid:               []string{"organ meat", "anchovies", "sardines", "beer", "shellfish"},
				Limit:               []string{"red meat", "alcohol", "fructose", "protein"},
				Consequence:         "High purine intake can trigger a gout flare",
				LongTermConsequence: "Frequent flares can permanently damage joints",
			},
			"lactose intolerance": {
				Avoid:       []string{"lactose", "milk", "cream", "cheese"},
				Limit:       []string{"butter", "yogurt"},
				Consequence: "Can cause bloating, cramps and diarrhoea",
			},
			"gerd": {
				Avoid:               []string{"spicy", "chili", "caffeine", "chocolate", "mint"},
				Limit:               []string{"tomato", "citrus", "onion", "garlic", "fried"},
				Consequence:         "Can trigger acid reflux and heartburn",
				LongTermConsequence: "Chronic reflux can inflame and damage the oesophagus",
			},
		},
		DiseaseAliases: map[string]string{
			"type 1 diabetes":        "diabetes",
			"type 2 diabetes":        "diabetes",
			"diabetes mellitus":      "diabetes",
			"high blood pressure":    "hypertension",
			"chronic kidney disease": "kidney disease",
			"ckd":                    "kidney disease",
			"cardiovascular disease": "heart disease",
			"celiac":                 "celiac disease",
			"coeliac disease":        "celiac disease",
			"acid reflux":            "gerd",
			"hypercholesterolemia":   "high cholesterol",
			"lactose intolerant":     "lactose intolerance",
		},
		Drugs: map[string]DrugRule{
			"warfarin": {
				Avoid:       []string{"cranberry", "grapefruit"},
				Limit:       []string{"spinach", "kale", "broccoli", "brussels sprouts", "green tea"},
				Consequence: "Vitamin K and certain juices change how warfarin thins the blood, raising bleeding or clotting risk",
			},
			"statins": {
				Avoid:       []string{"grapefruit"},
				Limit:       []string{"alcohol"},
				Consequence: "Grapefruit raises statin levels in the blood and the risk of muscle damage",
			},
			"maoi": {
				Avoid:       []string{"aged cheese", "cured meat", "soy sauce", "sauerkraut", "tyramine", "red wine"},
				Limit:       []string{"chocolate", "caffeine"},
				Consequence: "Tyramine-rich foods can cause a dangerous spike in blood pressure",
			},
			"metformin": {
				Avoid:       []string{"alcohol"},
				Limit:       []string{"sugar"},
				Consequence: "Alcohol with metformin increases the risk of lactic acidosis",
			},
			"ace inhibitors": {
				Avoid:       []string{"salt substitute", "potassium chloride"},
				Limit:       []string{"banana", "potassium", "orange juice"},
				Consequence: "Extra potassium can build up to dangerous levels",
			},
			"levothyroxine": {
				Limit:       []string{"soy", "walnut", "coffee", "grapefruit"},
				Consequence: "Can reduce absorption of thyroid medication",
			},
			"ciprofloxacin": {
				Avoid:       []string{"milk", "yogurt", "calcium-fortified"},
				Limit:       []string{"caffeine"},
				Consequence: "Calcium binds the antibiotic and reduces how much is absorbed",
			},
		},
		DrugAliases: map[string]string{
			"coumadin":     "warfarin",
			"atorvastatin": "statins",
			"simvastatin":  "statins",
			"lipitor":      "statins",
			"phenelzine":   "maoi",
			"lisinopril":   "ace inhibitors",
			"enalapril":    "ace inhibitors",
			"synthroid":    "levothyroxine",
			"cipro":        "ciprofloxacin",
		},
		Symptoms: map[string][]string{
			"headache":  {"msg", "nitrate", "nitrite", "caffeine", "aspartame", "aged cheese", "red wine"},
			"bloating":  {"lactose", "cabbage", "carbonated", "beans", "broccoli", "onion", "sorbitol"},
			"heartburn": {"spicy", "chili", "tomato", "citrus", "caffeine", "chocolate", "fried"},
			"nausea":    {"fried", "greasy", "spicy"},
			"diarrhea":  {"sorbitol", "lactose", "caffeine", "spicy"},
			"fatigue":   {"sugar", "refined flour"},
		},
		SymptomAliases: map[string]string{
			"migraine":  "headache",
			"gas":       "bloating",
			"diarrhoea": "diarrhea",
			"tiredness": "fatigue",
		},
		NutrientThresholds: map[string]float64{
			"sugar":         15,
			"sodium":        600,
			"carbohydrates": 60,
			"protein":       20,
			"fat":           20,
			"potassium":     300,
			"phosphorus":    200,
		},
		Substitutions: map[string][]string{
			"white bread": {"Whole-grain bread", "Ezekiel bread", "Cauliflower bread"},
			"white rice":  {"Brown rice", "Quinoa", "Cauliflower rice"},
			"soda":        {"Sparkling water", "Unsweetened iced tea", "Fruit-infused water"},
			"candy":       {"Fresh fruit", "Dark chocolate (85%+)", "Frozen grapes"},
			"chips":       {"Air-popped popcorn", "Roasted chickpeas", "Vegetable sticks"},
			"ice cream":   {"Frozen yogurt", "Banana nice cream", "Greek yogurt with berries"},
			"milk":        {"Oat milk", "Almond milk", "Soy milk"},
			"butter":      {"Olive oil", "Avocado spread"},
		},
		DiseaseSubstitutions: map[string]map[string][]string{
			"diabetes": {
				"pasta": {"Zucchini noodles", "Whole-wheat pasta", "Chickpea pasta"},
				"sugar": {"Stevia", "Monk fruit sweetener"},
			},
			"hypertension": {
				"salt": {"Herbs and spices", "Lemon juice", "Salt-free seasoning blend"},
			},
			"celiac disease": {
				"pasta": {"Rice pasta", "Buckwheat noodles"},
				"bread": {"Gluten-free bread"},
			},
		},
	}
}
