package catalog

// The 114 surahs in canonical order with Hafs verse counts.
var surahs = []Unit{
	{ID: 1, Ordinal: 1, Name: "Al-Fatihah", VerseCount: 7},
	{ID: 2, Ordinal: 2, Name: "Al-Baqarah", VerseCount: 286},
	{ID: 3, Ordinal: 3, Name: "Aal Imran", VerseCount: 200},
	{ID: 4, Ordinal: 4, Name: "An-Nisa", VerseCount: 176},
	{ID: 5, Ordinal: 5, Name: "Al-Ma'idah", VerseCount: 120},
	{ID: 6, Ordinal: 6, Name: "Al-An'am", VerseCount: 165},
	{ID: 7, Ordinal: 7, Name: "Al-A'raf", VerseCount: 206},
	{ID: 8, Ordinal: 8, Name: "Al-Anfal", VerseCount: 75},
	{ID: 9, Ordinal: 9, Name: "At-Tawbah", VerseCount: 129},
	{ID: 10, Ordinal: 10, Name: "Yunus", VerseCount: 109},
	{ID: 11, Ordinal: 11, Name: "Hud", VerseCount: 123},
	{ID: 12, Ordinal: 12, Name: "Yusuf", VerseCount: 111},
	{ID: 13, Ordinal: 13, Name: "Ar-Ra'd", VerseCount: 43},
	{ID: 14, Ordinal: 14, Name: "Ibrahim", VerseCount: 52},
	{ID: 15, Ordinal: 15, Name: "Al-Hijr", VerseCount: 99},
	{ID: 16, Ordinal: 16, Name: "An-Nahl", VerseCount: 128},
	{ID: 17, Ordinal: 17, Name: "Al-Isra", VerseCount: 111},
	{ID: 18, Ordinal: 18, Name: "Al-Kahf", VerseCount: 110},
	{ID: 19, Ordinal: 19, Name: "Maryam", VerseCount: 98},
	{ID: 20, Ordinal: 20, Name: "Ta-Ha", VerseCount: 135},
	{ID: 21, Ordinal: 21, Name: "Al-Anbiya", VerseCount: 112},
	{ID: 22, Ordinal: 22, Name: "Al-Hajj", VerseCount: 78},
	{ID: 23, Ordinal: 23, Name: "Al-Mu'minun", VerseCount: 118},
	{ID: 24, Ordinal: 24, Name: "An-Nur", VerseCount: 64},
	{ID: 25, Ordinal: 25, Name: "Al-Furqan", VerseCount: 77},
	{ID: 26, Ordinal: 26, Name: "Ash-Shu'ara", VerseCount: 227},
	{ID: 27, Ordinal: 27, Name: "An-Naml", VerseCount: 93},
	{ID: 28, Ordinal: 28, Name: "Al-Qasas", VerseCount: 88},
	{ID: 29, Ordinal: 29, Name: "Al-Ankabut", VerseCount: 69},
	{ID: 30, Ordinal: 30, Name: "Ar-Rum", VerseCount: 60},
	{ID: 31, Ordinal: 31, Name: "Luqman", VerseCount: 34},
	{ID: 32, Ordinal: 32, Name: "As-Sajdah", VerseCount: 30},
	{ID: 33, Ordinal: 33, Name: "Al-Ahzab", VerseCount: 73},
	{ID: 34, Ordinal: 34, Name: "Saba", VerseCount: 54},
	{ID: 35, Ordinal: 35, Name: "Fatir", VerseCount: 45},
	{ID: 36, Ordinal: 36, Name: "Ya-Sin", VerseCount: 83},
	{ID: 37, Ordinal: 37, Name: "As-Saffat", VerseCount: 182},
	{ID: 38, Ordinal: 38, Name: "Sad", VerseCount: 88},
	{ID: 39, Ordinal: 39, Name: "Az-Zumar", VerseCount: 75},
	{ID: 40, Ordinal: 40, Name: "Ghafir", VerseCount: 85},
	{ID: 41, Ordinal: 41, Name: "Fussilat", VerseCount: 54},
	{ID: 42, Ordinal: 42, Name: "Ash-Shura", VerseCount: 53},
	{ID: 43, Ordinal: 43, Name: "Az-Zukhruf", VerseCount: 89},
	{ID: 44, Ordinal: 44, Name: "Ad-Dukhan", VerseCount: 59},
	{ID: 45, Ordinal: 45, Name: "Al-Jathiyah", VerseCount: 37},
	{ID: 46, Ordinal: 46, Name: "Al-Ahqaf", VerseCount: 35},
	{ID: 47, Ordinal: 47, Name: "Muhammad", VerseCount: 38},
	{ID: 48, Ordinal: 48, Name: "Al-Fath", VerseCount: 29},
	{ID: 49, Ordinal: 49, Name: "Al-Hujurat", VerseCount: 18},
	{ID: 50, Ordinal: 50, Name: "Qaf", VerseCount: 45},
	{ID: 51, Ordinal: 51, Name: "Adh-Dhariyat", VerseCount: 60},
	{ID: 52, Ordinal: 52, Name: "At-Tur", VerseCount: 49},
	{ID: 53, Ordinal: 53, Name: "An-Najm", VerseCount: 62},
	{ID: 54, Ordinal: 54, Name: "Al-Qamar", VerseCount: 55},
	{ID: 55, Ordinal: 55, Name: "Ar-Rahman", VerseCount: 78},
	{ID: 56, Ordinal: 56, Name: "Al-Waqi'ah", VerseCount: 96},
	{ID: 57, Ordinal: 57, Name: "Al-Hadid", VerseCount: 29},
	{ID: 58, Ordinal: 58, Name: "Al-Mujadilah", VerseCount: 22},
	{ID: 59, Ordinal: 59, Name: "Al-Hashr", VerseCount: 24},
	{ID: 60, Ordinal: 60, Name: "Al-Mumtahanah", VerseCount: 13},
	{ID: 61, Ordinal: 61, Name: "As-Saff", VerseCount: 14},
	{ID: 62, Ordinal: 62, Name: "Al-Jumu'ah", VerseCount: 11},
	{ID: 63, Ordinal: 63, Name: "Al-Munafiqun", VerseCount: 11},
	{ID: 64, Ordinal: 64, Name: "At-Taghabun", VerseCount: 18},
	{ID: 65, Ordinal: 65, Name: "At-Talaq", VerseCount: 12},
	{ID: 66, Ordinal: 66, Name: "At-Tahrim", VerseCount: 12},
	{ID: 67, Ordinal: 67, Name: "Al-Mulk", VerseCount: 30},
	{ID: 68, Ordinal: 68, Name: "Al-Qalam", VerseCount: 52},
	{ID: 69, Ordinal: 69, Name: "Al-Haqqah", VerseCount: 52},
	{ID: 70, Ordinal: 70, Name: "Al-Ma'arij", VerseCount: 44},
	{ID: 71, Ordinal: 71, Name: "Nuh", VerseCount: 28},
	{ID: 72, Ordinal: 72, Name: "Al-Jinn", VerseCount: 28},
	{ID: 73, Ordinal: 73, Name: "Al-Muzzammil", VerseCount: 20},
	{ID: 74, Ordinal: 74, Name: "Al-Muddaththir", VerseCount: 56},
	{ID: 75, Ordinal: 75, Name: "Al-Qiyamah", VerseCount: 40},
	{ID: 76, Ordinal: 76, Name: "Al-Insan", VerseCount: 31},
	{ID: 77, Ordinal: 77, Name: "Al-Mursalat", VerseCount: 50},
	{ID: 78, Ordinal: 78, Name: "An-Naba", VerseCount: 40},
	{ID: 79, Ordinal: 79, Name: "An-Nazi'at", VerseCount: 46},
	{ID: 80, Ordinal: 80, Name: "Abasa", VerseCount: 42},
	{ID: 81, Ordinal: 81, Name: "At-Takwir", VerseCount: 29},
	{ID: 82, Ordinal: 82, Name: "Al-Infitar", VerseCount: 19},
	{ID: 83, Ordinal: 83, Name: "Al-Mutaffifin", VerseCount: 36},
	{ID: 84, Ordinal: 84, Name: "Al-Inshiqaq", VerseCount: 25},
	{ID: 85, Ordinal: 85, Name: "Al-Buruj", VerseCount: 22},
	{ID: 86, Ordinal: 86, Name: "At-Tariq", VerseCount: 17},
	{ID: 87, Ordinal: 87, Name: "Al-A'la", VerseCount: 19},
	{ID: 88, Ordinal: 88, Name: "Al-Ghashiyah", VerseCount: 26},
	{ID: 89, Ordinal: 89, Name: "Al-Fajr", VerseCount: 30},
	{ID: 90, Ordinal: 90, Name: "Al-Balad", VerseCount: 20},
	{ID: 91, Ordinal: 91, Name: "Ash-Shams", VerseCount: 15},
	{ID: 92, Ordinal: 92, Name: "Al-Layl", VerseCount: 21},
	{ID: 93, Ordinal: 93, Name: "Ad-Duha", VerseCount: 11},
	{ID: 94, Ordinal: 94, Name: "Ash-Sharh", VerseCount: 8},
	{ID: 95, Ordinal: 95, Name: "At-Tin", VerseCount: 8},
	{ID: 96, Ordinal: 96, Name: "Al-Alaq", VerseCount: 19},
	{ID: 97, Ordinal: 97, Name: "Al-Qadr", VerseCount: 5},
	{ID: 98, Ordinal: 98, Name: "Al-Bayyinah", VerseCount: 8},
	{ID: 99, Ordinal: 99, Name: "Az-Zalzalah", VerseCount: 8},
	{ID: 100, Ordinal: 100, Name: "Al-Adiyat", VerseCount: 11},
	{ID: 101, Ordinal: 101, Name: "Al-Qari'ah", VerseCount: 11},
	{ID: 102, Ordinal: 102, Name: "At-Takathur", VerseCount: 8},
	{ID: 103, Ordinal: 103, Name: "Al-Asr", VerseCount: 3},
	{ID: 104, Ordinal: 104, Name: "Al-Humazah", VerseCount: 9},
	{ID: 105, Ordinal: 105, Name: "Al-Fil", VerseCount: 5},
	{ID: 106, Ordinal: 106, Name: "Quraysh", VerseCount: 4},
	{ID: 107, Ordinal: 107, Name: "Al-Ma'un", VerseCount: 7},
	{ID: 108, Ordinal: 108, Name: "Al-Kawthar", VerseCount: 3},
	{ID: 109, Ordinal: 109, Name: "Al-Kafirun", VerseCount: 6},
	{ID: 110, Ordinal: 110, Name: "An-Nasr", VerseCount: 3},
	{ID: 111, Ordinal: 111, Name: "Al-Masad", VerseCount: 5},
	{ID: 112, Ordinal: 112, Name: "Al-Ikhlas", VerseCount: 4},
	{ID: 113, Ordinal: 113, Name: "Al-Falaq", VerseCount: 5},
	{ID: 114, Ordinal: 114, Name: "An-Nas", VerseCount: 6},
}
