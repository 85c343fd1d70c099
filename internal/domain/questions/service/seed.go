package service

// seedQuestion is a built-in question inserted on first start.
type seedQuestion struct {
	grade   int
	text    string
	options []string
	correct string
}

// defaultQuestions holds five questions per grade, difficulty rising
// with the grade. Insertion order is the presentation order.
var defaultQuestions = []seedQuestion{
	{1, "What is 2 + 2?", []string{"3", "4", "5"}, "4"},
	{1, "What is 5 - 3?", []string{"1", "2", "3"}, "2"},
	{1, "What is 3 + 1?", []string{"3", "4", "5"}, "4"},
	{1, "What is 6 - 2?", []string{"3", "4", "5"}, "4"},
	{1, "What is 1 + 2?", []string{"2", "3", "4"}, "3"},

	{2, "What is 7 + 3?", []string{"9", "10", "11"}, "10"},
	{2, "What is 8 - 5?", []string{"2", "3", "4"}, "3"},
	{2, "What is 4 + 5?", []string{"8", "9", "10"}, "9"},
	{2, "What is 10 - 4?", []string{"5", "6", "7"}, "6"},
	{2, "What is 2 + 6?", []string{"7", "8", "9"}, "8"},

	{3, "What is 5 * 2?", []string{"8", "9", "10"}, "10"},
	{3, "What is 9 / 3?", []string{"2", "3", "4"}, "3"},
	{3, "What is 6 + 4?", []string{"9", "10", "11"}, "10"},
	{3, "What is 15 - 5?", []string{"8", "9", "10"}, "10"},
	{3, "What is 3 * 3?", []string{"6", "8", "9"}, "9"},

	{4, "What is 12 / 4?", []string{"2", "3", "4"}, "3"},
	{4, "What is 7 * 3?", []string{"20", "21", "22"}, "21"},
	{4, "What is 16 - 7?", []string{"8", "9", "10"}, "9"},
	{4, "What is 5 * 4?", []string{"19", "20", "21"}, "20"},
	{4, "What is 25 / 5?", []string{"4", "5", "6"}, "5"},

	{5, "What is 14 + 7?", []string{"20", "21", "22"}, "21"},
	{5, "What is 18 / 2?", []string{"7", "8", "9"}, "9"},
	{5, "What is 11 * 2?", []string{"21", "22", "23"}, "22"},
	{5, "What is 24 - 9?", []string{"14", "15", "16"}, "15"},
	{5, "What is 30 / 3?", []string{"9", "10", "11"}, "10"},

	{6, "What is 15 * 2?", []string{"28", "29", "30"}, "30"},
	{6, "What is 18 / 6?", []string{"2", "3", "4"}, "3"},
	{6, "What is 25 + 12?", []string{"36", "37", "38"}, "37"},
	{6, "What is 40 - 15?", []string{"24", "25", "26"}, "25"},
	{6, "What is 21 / 3?", []string{"6", "7", "8"}, "7"},

	{7, "What is 32 / 8?", []string{"3", "4", "5"}, "4"},
	{7, "What is 7 * 5?", []string{"34", "35", "36"}, "35"},
	{7, "What is 45 - 18?", []string{"26", "27", "28"}, "27"},
	{7, "What is 28 / 4?", []string{"6", "7", "8"}, "7"},
	{7, "What is 13 * 3?", []string{"38", "39", "40"}, "39"},

	{8, "What is 64 / 8?", []string{"7", "8", "9"}, "8"},
	{8, "What is 14 * 2?", []string{"27", "28", "29"}, "28"},
	{8, "What is 75 - 35?", []string{"38", "39", "40"}, "40"},
	{8, "What is 24 / 6?", []string{"3", "4", "5"}, "4"},
	{8, "What is 17 * 2?", []string{"33", "34", "35"}, "34"},

	{9, "What is 81 / 9?", []string{"8", "9", "10"}, "9"},
	{9, "What is 23 + 27?", []string{"49", "50", "51"}, "50"},
	{9, "What is 15 * 4?", []string{"59", "60", "61"}, "60"},
	{9, "What is 50 / 5?", []string{"9", "10", "11"}, "10"},
	{9, "What is 19 * 3?", []string{"56", "57", "58"}, "57"},

	{10, "What is 100 / 10?", []string{"9", "10", "11"}, "10"},
	{10, "What is 12 * 12?", []string{"143", "144", "145"}, "144"},
	{10, "What is 77 - 33?", []string{"43", "44", "45"}, "44"},
	{10, "What is 90 / 9?", []string{"9", "10", "11"}, "10"},
	{10, "What is 21 * 5?", []string{"104", "105", "106"}, "105"},

	{11, "What is 144 / 12?", []string{"10", "11", "12"}, "12"},
	{11, "What is 13 * 13?", []string{"168", "169", "170"}, "169"},
	{11, "What is 110 - 45?", []string{"64", "65", "66"}, "65"},
	{11, "What is 121 / 11?", []string{"10", "11", "12"}, "11"},
	{11, "What is 24 * 6?", []string{"143", "144", "145"}, "144"},

	{12, "What is 169 / 13?", []string{"12", "13", "14"}, "13"},
	{12, "What is 15 * 15?", []string{"224", "225", "226"}, "225"},
	{12, "What is 200 - 75?", []string{"124", "125", "126"}, "125"},
	{12, "What is 144 / 12?", []string{"11", "12", "13"}, "12"},
	{12, "What is 20 * 8?", []string{"159", "160", "161"}, "160"},
}
