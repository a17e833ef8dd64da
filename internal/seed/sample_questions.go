package seed

import "studybot-be/internal/model"

// SampleQuestions is the starter bank: five questions for each of the four
// quiz topics. Insertion order defines the sequential quiz order per topic.
func SampleQuestions() []model.Question {
	return []model.Question{
		// Mathematics
		{
			Topic:         "math",
			Question:      "What is the value of 15 + 27?",
			OptionA:       "40",
			OptionB:       "42",
			OptionC:       "44",
			OptionD:       "46",
			CorrectAnswer: "B",
			Explanation:   "15 + 27 = 42. You can add 15 + 20 = 35, then 35 + 7 = 42.",
			Difficulty:    "easy",
		},
		{
			Topic:         "math",
			Question:      "If a triangle has angles of 60°, 60°, and 60°, what type of triangle is it?",
			OptionA:       "Right triangle",
			OptionB:       "Isosceles triangle",
			OptionC:       "Equilateral triangle",
			OptionD:       "Scalene triangle",
			CorrectAnswer: "C",
			Explanation:   "An equilateral triangle has all three angles equal to 60° and all three sides equal in length.",
			Difficulty:    "medium",
		},
		{
			Topic:         "math",
			Question:      "What is the derivative of x²?",
			OptionA:       "x",
			OptionB:       "2x",
			OptionC:       "x²",
			OptionD:       "2x²",
			CorrectAnswer: "B",
			Explanation:   "Using the power rule: d/dx(x²) = 2x¹ = 2x.",
			Difficulty:    "hard",
		},
		{
			Topic:         "math",
			Question:      "What is 25% of 80?",
			OptionA:       "15",
			OptionB:       "20",
			OptionC:       "25",
			OptionD:       "30",
			CorrectAnswer: "B",
			Explanation:   "25% of 80 = 0.25 × 80 = 20.",
			Difficulty:    "easy",
		},
		{
			Topic:         "math",
			Question:      "Solve for x: 2x + 5 = 13",
			OptionA:       "x = 3",
			OptionB:       "x = 4",
			OptionC:       "x = 5",
			OptionD:       "x = 6",
			CorrectAnswer: "B",
			Explanation:   "2x + 5 = 13, so 2x = 8, therefore x = 4.",
			Difficulty:    "medium",
		},

		// Science
		{
			Topic:         "science",
			Question:      "What is the chemical symbol for water?",
			OptionA:       "H2O",
			OptionB:       "CO2",
			OptionC:       "NaCl",
			OptionD:       "O2",
			CorrectAnswer: "A",
			Explanation:   "Water is H2O, which means it contains 2 hydrogen atoms and 1 oxygen atom.",
			Difficulty:    "easy",
		},
		{
			Topic:         "science",
			Question:      "Which planet is known as the Red Planet?",
			OptionA:       "Venus",
			OptionB:       "Mars",
			OptionC:       "Jupiter",
			OptionD:       "Saturn",
			CorrectAnswer: "B",
			Explanation:   "Mars is called the Red Planet because of the iron oxide (rust) on its surface, which gives it a reddish appearance.",
			Difficulty:    "easy",
		},
		{
			Topic:         "science",
			Question:      "What is the process by which plants make their own food?",
			OptionA:       "Respiration",
			OptionB:       "Photosynthesis",
			OptionC:       "Digestion",
			OptionD:       "Fermentation",
			CorrectAnswer: "B",
			Explanation:   "Photosynthesis is the process by which plants use sunlight, carbon dioxide, and water to produce glucose and oxygen.",
			Difficulty:    "medium",
		},
		{
			Topic:         "science",
			Question:      "What is the speed of light in a vacuum?",
			OptionA:       "300,000 km/s",
			OptionB:       "300,000,000 m/s",
			OptionC:       "3 × 10⁸ m/s",
			OptionD:       "All of the above",
			CorrectAnswer: "D",
			Explanation:   "The speed of light in a vacuum is approximately 3 × 10⁸ m/s, which is also 300,000 km/s or 300,000,000 m/s.",
			Difficulty:    "hard",
		},
		{
			Topic:         "science",
			Question:      "Which gas makes up most of Earth's atmosphere?",
			OptionA:       "Oxygen",
			OptionB:       "Carbon dioxide",
			OptionC:       "Nitrogen",
			OptionD:       "Argon",
			CorrectAnswer: "C",
			Explanation:   "Nitrogen makes up about 78% of Earth's atmosphere, while oxygen makes up about 21%.",
			Difficulty:    "medium",
		},

		// English
		{
			Topic:         "english",
			Question:      "What is the plural of \"child\"?",
			OptionA:       "childs",
			OptionB:       "children",
			OptionC:       "childes",
			OptionD:       "child's",
			CorrectAnswer: "B",
			Explanation:   "The plural of \"child\" is \"children\". This is an irregular plural form.",
			Difficulty:    "easy",
		},
		{
			Topic:         "english",
			Question:      "Which word is a synonym for \"happy\"?",
			OptionA:       "Sad",
			OptionB:       "Angry",
			OptionC:       "Joyful",
			OptionD:       "Tired",
			CorrectAnswer: "C",
			Explanation:   "\"Joyful\" is a synonym for \"happy\" as both words express positive emotions.",
			Difficulty:    "easy",
		},
		{
			Topic:         "english",
			Question:      "What type of word is \"quickly\" in the sentence \"She ran quickly\"?",
			OptionA:       "Noun",
			OptionB:       "Verb",
			OptionC:       "Adjective",
			OptionD:       "Adverb",
			CorrectAnswer: "D",
			Explanation:   "\"Quickly\" is an adverb because it modifies the verb \"ran\" by describing how she ran.",
			Difficulty:    "medium",
		},
		{
			Topic:         "english",
			Question:      "Which sentence is written in passive voice?",
			OptionA:       "The cat chased the mouse.",
			OptionB:       "The mouse was chased by the cat.",
			OptionC:       "The cat is chasing the mouse.",
			OptionD:       "The cat will chase the mouse.",
			CorrectAnswer: "B",
			Explanation:   "Passive voice has the subject receiving the action. \"The mouse was chased by the cat\" is passive voice.",
			Difficulty:    "medium",
		},
		{
			Topic:         "english",
			Question:      "What is the main theme of Shakespeare's \"Romeo and Juliet\"?",
			OptionA:       "Revenge",
			OptionB:       "Love conquers all",
			OptionC:       "Power and corruption",
			OptionD:       "Coming of age",
			CorrectAnswer: "B",
			Explanation:   "The main theme of \"Romeo and Juliet\" is that love can overcome obstacles, even family feuds and social barriers.",
			Difficulty:    "hard",
		},

		// History
		{
			Topic:         "history",
			Question:      "In which year did World War II end?",
			OptionA:       "1944",
			OptionB:       "1945",
			OptionC:       "1946",
			OptionD:       "1947",
			CorrectAnswer: "B",
			Explanation:   "World War II ended in 1945 with the surrender of Japan on September 2, 1945.",
			Difficulty:    "easy",
		},
		{
			Topic:         "history",
			Question:      "Who was the first President of the United States?",
			OptionA:       "John Adams",
			OptionB:       "Thomas Jefferson",
			OptionC:       "George Washington",
			OptionD:       "Benjamin Franklin",
			CorrectAnswer: "C",
			Explanation:   "George Washington was the first President of the United States, serving from 1789 to 1797.",
			Difficulty:    "easy",
		},
		{
			Topic:         "history",
			Question:      "Which ancient wonder of the world was located in Alexandria?",
			OptionA:       "Hanging Gardens",
			OptionB:       "Colossus of Rhodes",
			OptionC:       "Lighthouse of Alexandria",
			OptionD:       "Temple of Artemis",
			CorrectAnswer: "C",
			Explanation:   "The Lighthouse of Alexandria, also known as the Pharos of Alexandria, was one of the Seven Wonders of the Ancient World.",
			Difficulty:    "medium",
		},
		{
			Topic:         "history",
			Question:      "What was the name of the ship that brought the Pilgrims to America?",
			OptionA:       "Mayflower",
			OptionB:       "Santa Maria",
			OptionC:       "Endeavour",
			OptionD:       "Discovery",
			CorrectAnswer: "A",
			Explanation:   "The Mayflower brought the Pilgrims from England to America in 1620, landing at Plymouth Rock.",
			Difficulty:    "medium",
		},
		{
			Topic:         "history",
			Question:      "Which empire was ruled by Julius Caesar?",
			OptionA:       "Greek Empire",
			OptionB:       "Roman Empire",
			OptionC:       "Byzantine Empire",
			OptionD:       "Ottoman Empire",
			CorrectAnswer: "B",
			Explanation:   "Julius Caesar was a Roman general and statesman who played a critical role in the rise of the Roman Empire.",
			Difficulty:    "hard",
		},
	}
}
