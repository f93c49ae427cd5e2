package questionbank

// SeedQuestions is a small built-in bank covering grades 3-5 arithmetic.
// Used by the simulator and as fixture data when no store-backed bank is
// configured.
func SeedQuestions() []Question {
	return []Question{
		{
			ID: "q-add-001", ConceptID: "arith.add.carry", Difficulty: 1,
			Template: TemplateNumericEntry,
			Prompt:   "What is 345 + 278?", CorrectAnswer: "623",
			Distractors: []Distractor{
				{Option: "513", MisconceptionTag: "CARRY_DROPPED"},
				{Option: "613", MisconceptionTag: "CARRY_DROPPED"},
				{Option: "633"},
			},
		},
		{
			ID: "q-add-002", ConceptID: "arith.add.carry", Difficulty: 2,
			Template: TemplateWordProblem,
			Prompt:   "A library has 468 fiction and 357 non-fiction books. How many books in total?",
			CorrectAnswer: "825",
			Distractors: []Distractor{
				{Option: "715", MisconceptionTag: "CARRY_DROPPED"},
				{Option: "835"},
				{Option: "111"},
			},
		},
		{
			ID: "q-sub-001", ConceptID: "arith.sub.borrow", Difficulty: 2,
			Template: TemplateNumericEntry,
			Prompt:   "What is 602 - 347?", CorrectAnswer: "255",
			Distractors: []Distractor{
				{Option: "345", MisconceptionTag: "SMALLER_FROM_LARGER"},
				{Option: "265", MisconceptionTag: "BORROW_SKIPPED"},
				{Option: "355"},
			},
		},
		{
			ID: "q-sub-002", ConceptID: "arith.sub.borrow", Difficulty: 3,
			Template: TemplateMultipleChoice,
			Prompt:   "Which is 1000 - 284?", CorrectAnswer: "716",
			Distractors: []Distractor{
				{Option: "826", MisconceptionTag: "SMALLER_FROM_LARGER"},
				{Option: "726", MisconceptionTag: "BORROW_SKIPPED"},
				{Option: "684"},
			},
		},
		{
			ID: "q-neg-001", ConceptID: "int.negatives", Difficulty: 3,
			Template: TemplateNumericEntry,
			Prompt:   "What is -4 + 9?", CorrectAnswer: "5",
			Distractors: []Distractor{
				{Option: "-13", MisconceptionTag: "SIGN_IGNORANCE"},
				{Option: "13", MisconceptionTag: "SIGN_IGNORANCE"},
				{Option: "-5", MisconceptionTag: "SIGN_IGNORANCE"},
			},
		},
		{
			ID: "q-neg-002", ConceptID: "int.negatives", Difficulty: 3,
			Template: TemplateMultipleChoice,
			Prompt:   "Which number is smallest: -7, -2, 0, 3?", CorrectAnswer: "-7",
			Distractors: []Distractor{
				{Option: "-2", MisconceptionTag: "MAGNITUDE_AS_VALUE"},
				{Option: "0"},
				{Option: "3", MisconceptionTag: "SIGN_IGNORANCE"},
			},
		},
		{
			ID: "q-mul-001", ConceptID: "arith.mul.partial", Difficulty: 2,
			Template: TemplateNumericEntry,
			Prompt:   "What is 24 x 16?", CorrectAnswer: "384",
			Distractors: []Distractor{
				{Option: "144", MisconceptionTag: "PARTIAL_PRODUCT_DROPPED"},
				{Option: "240", MisconceptionTag: "PARTIAL_PRODUCT_DROPPED"},
				{Option: "394"},
			},
		},
		{
			ID: "q-mul-002", ConceptID: "arith.mul.partial", Difficulty: 3,
			Template: TemplateWordProblem,
			Prompt:   "A crate holds 36 apples. How many apples are in 14 crates?",
			CorrectAnswer: "504",
			Distractors: []Distractor{
				{Option: "360", MisconceptionTag: "PARTIAL_PRODUCT_DROPPED"},
				{Option: "494"},
				{Option: "514"},
			},
		},
		{
			ID: "q-frac-001", ConceptID: "frac.compare", Difficulty: 3,
			Template: TemplateMultipleChoice,
			Prompt:   "Which fraction is larger: 3/4 or 2/3?", CorrectAnswer: "3/4",
			Distractors: []Distractor{
				{Option: "2/3", MisconceptionTag: "BIGGER_DENOMINATOR_BIGGER"},
				{Option: "they are equal"},
			},
		},
		{
			ID: "q-frac-002", ConceptID: "frac.compare", Difficulty: 4,
			Template: TemplateVisualModel,
			Prompt:   "A bar is split into 8 equal parts with 5 shaded. Is the shaded part more or less than 1/2?",
			CorrectAnswer: "more",
			Distractors: []Distractor{
				{Option: "less", MisconceptionTag: "BIGGER_DENOMINATOR_BIGGER"},
				{Option: "equal"},
			},
		},
		{
			ID: "q-frac-003", ConceptID: "frac.add", Difficulty: 4,
			Template: TemplateNumericEntry,
			Prompt:   "What is 1/4 + 1/4?", CorrectAnswer: "1/2",
			Distractors: []Distractor{
				{Option: "2/8", MisconceptionTag: "ADD_ACROSS"},
				{Option: "1/8", MisconceptionTag: "ADD_ACROSS"},
				{Option: "2/4"},
			},
		},
		{
			ID: "q-frac-004", ConceptID: "frac.add", Difficulty: 5,
			Template: TemplateWordProblem,
			Prompt:   "Maya ate 1/3 of a pizza and Leo ate 1/6. How much of the pizza was eaten?",
			CorrectAnswer: "1/2",
			Distractors: []Distractor{
				{Option: "2/9", MisconceptionTag: "ADD_ACROSS"},
				{Option: "1/6"},
				{Option: "2/3"},
			},
		},
		{
			ID: "q-dec-001", ConceptID: "dec.place", Difficulty: 3,
			Template: TemplateMultipleChoice,
			Prompt:   "Which is larger: 0.8 or 0.35?", CorrectAnswer: "0.8",
			Distractors: []Distractor{
				{Option: "0.35", MisconceptionTag: "LONGER_DECIMAL_LARGER"},
				{Option: "they are equal"},
			},
		},
		{
			ID: "q-dec-002", ConceptID: "dec.place", Difficulty: 4,
			Template: TemplateNumericEntry,
			Prompt:   "What is 0.6 + 0.25?", CorrectAnswer: "0.85",
			Distractors: []Distractor{
				{Option: "0.31", MisconceptionTag: "LONGER_DECIMAL_LARGER"},
				{Option: "0.85"},
				{Option: "0.65"},
			},
		},
		{
			ID: "q-div-001", ConceptID: "arith.div.remainder", Difficulty: 4,
			Template: TemplateWordProblem,
			Prompt:   "19 students split into teams of 4. How many full teams are there?",
			CorrectAnswer: "4",
			Distractors: []Distractor{
				{Option: "5", MisconceptionTag: "REMAINDER_ROUNDED_UP"},
				{Option: "3"},
				{Option: "4.75"},
			},
		},
		{
			ID: "q-div-002", ConceptID: "arith.div.remainder", Difficulty: 4,
			Template: TemplateNumericEntry,
			Prompt:   "What is the remainder of 53 divided by 6?", CorrectAnswer: "5",
			Distractors: []Distractor{
				{Option: "8", MisconceptionTag: "QUOTIENT_AS_REMAINDER"},
				{Option: "6"},
				{Option: "3"},
			},
		},
		{
			ID: "q-ref-001", ConceptID: "frac.compare", Difficulty: 1,
			Template: TemplateReflectionPrompt,
			Prompt:   "When comparing fractions with the same numerator, which denominator wins? Explain your rule.",
			CorrectAnswer: "smaller denominator",
			Distractors: []Distractor{
				{Option: "bigger denominator", MisconceptionTag: "BIGGER_DENOMINATOR_BIGGER"},
			},
		},
		{
			ID: "q-ref-002", ConceptID: "int.negatives", Difficulty: 1,
			Template: TemplateReflectionPrompt,
			Prompt:   "Is -10 closer to zero than -2? Explain with a number line.",
			CorrectAnswer: "no",
			Distractors: []Distractor{
				{Option: "yes", MisconceptionTag: "MAGNITUDE_AS_VALUE"},
			},
		},
		{
			ID: "q-est-001", ConceptID: "est.rounding", Difficulty: 2,
			Template: TemplateMultipleChoice,
			Prompt:   "About how much is 49 x 21?", CorrectAnswer: "1000",
			Distractors: []Distractor{
				{Option: "100", MisconceptionTag: "PLACE_VALUE_SLIP"},
				{Option: "10000", MisconceptionTag: "PLACE_VALUE_SLIP"},
				{Option: "500"},
			},
		},
		{
			ID: "q-est-002", ConceptID: "est.rounding", Difficulty: 2,
			Template: TemplateVisualModel,
			Prompt:   "Round 3,482 to the nearest hundred.", CorrectAnswer: "3,500",
			Distractors: []Distractor{
				{Option: "3,400", MisconceptionTag: "ROUND_DOWN_ALWAYS"},
				{Option: "3,000"},
				{Option: "3,480"},
			},
		},
	}
}
