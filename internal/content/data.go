package content

// The authored curriculum: the last six surahs of the Quran in journey
// order, each verse with its word-by-word breakdown. Distractors are decoy
// tiles drawn from elsewhere in the same surah group.
var surahs = []Surah{
	{
		ID:      "nas",
		Number:  114,
		Title:   "An-Nas",
		Meaning: "The Mankind",
		Story: "This Surah is the final shield. It protects us from internal evils, " +
			"the whispers that come from devils and bad people. While Al-Falaq protects " +
			"from outside dangers, An-Nas protects your heart and mind.",
		Color:       "indigo",
		TotalVerses: 6,
		Verses: []Verse{
			{
				ID:           "114-1",
				Surah:        114,
				Ayah:         1,
				ArabicFull:   "قُلْ أَعُوذُ بِرَبِّ النَّاسِ",
				Translation:  `Say, "I seek refuge in the Lord of mankind,"`,
				Visual:       "people",
				TeachingNote: "Allah is the Rabb (Sustainer) of all humans.",
				Words: []Word{
					{ID: "n1-1", Arabic: "قُلْ", Transliteration: "Qul", Meaning: "Say"},
					{ID: "n1-2", Arabic: "أَعُوذُ", Transliteration: "A'udhu", Meaning: "I seek refuge"},
					{ID: "n1-3", Arabic: "بِرَبِّ", Transliteration: "Bi-rabbi", Meaning: "In the Lord"},
					{ID: "n1-4", Arabic: "النَّاسِ", Transliteration: "An-nas", Meaning: "Of Mankind"},
				},
				Distractors: []Distractor{
					{ID: "d1", Arabic: "الْفَلَقِ", Transliteration: "Al-Falaq"},
				},
			},
			{
				ID:           "114-2",
				Surah:        114,
				Ayah:         2,
				ArabicFull:   "مَلِكِ النَّاسِ",
				Translation:  "The King of mankind,",
				Visual:       "king",
				TeachingNote: "He is the true King who has full authority over everyone.",
				Words: []Word{
					{ID: "n2-1", Arabic: "مَلِكِ", Transliteration: "Maliki", Meaning: "The King"},
					{ID: "n2-2", Arabic: "النَّاسِ", Transliteration: "An-nas", Meaning: "Of Mankind"},
				},
				Distractors: []Distractor{
					{ID: "d2", Arabic: "إِلَٰهِ", Transliteration: "Ilahi"},
				},
			},
			{
				ID:           "114-3",
				Surah:        114,
				Ayah:         3,
				ArabicFull:   "إِلَٰهِ النَّاسِ",
				Translation:  "The God of mankind,",
				Visual:       "oneness",
				TeachingNote: "He is the only One worthy of worship for all people.",
				Words: []Word{
					{ID: "n3-1", Arabic: "إِلَٰهِ", Transliteration: "Ilahi", Meaning: "The God"},
					{ID: "n3-2", Arabic: "النَّاسِ", Transliteration: "An-nas", Meaning: "Of Mankind"},
				},
				Distractors: []Distractor{
					{ID: "d3", Arabic: "شَرِّ", Transliteration: "Sharri"},
				},
			},
			{
				ID:           "114-4",
				Surah:        114,
				Ayah:         4,
				ArabicFull:   "مِن شَرِّ الْوَسْوَاسِ الْخَنَّاسِ",
				Translation:  "From the evil of the retreating whisperer,",
				Visual:       "whisper",
				TeachingNote: "The devil whispers bad thoughts but runs away when you remember Allah.",
				Words: []Word{
					{ID: "n4-1", Arabic: "مِن", Transliteration: "Min", Meaning: "From"},
					{ID: "n4-2", Arabic: "شَرِّ", Transliteration: "Sharri", Meaning: "The evil"},
					{ID: "n4-3", Arabic: "الْوَسْوَاسِ", Transliteration: "Al-waswasi", Meaning: "Of the whisperer"},
					{ID: "n4-4", Arabic: "الْخَنَّاسِ", Transliteration: "Al-khannas", Meaning: "The retreating one"},
				},
				Distractors: []Distractor{
					{ID: "d4", Arabic: "صُدُورِ", Transliteration: "Suduri"},
				},
			},
			{
				ID:           "114-5",
				Surah:        114,
				Ayah:         5,
				ArabicFull:   "الَّذِي يُوَسْوِسُ فِي صُدُورِ النَّاسِ",
				Translation:  "Who whispers [evil] into the breasts of mankind,",
				Visual:       "default",
				TeachingNote: "These whispers attack the heart (sadr), the center of our feelings.",
				Words: []Word{
					{ID: "n5-1", Arabic: "الَّذِي", Transliteration: "Alladhi", Meaning: "The one who"},
					{ID: "n5-2", Arabic: "يُوَسْوِسُ", Transliteration: "Yuwaswisu", Meaning: "Whispers"},
					{ID: "n5-3", Arabic: "فِي", Transliteration: "Fi", Meaning: "Into"},
					{ID: "n5-4", Arabic: "صُدُورِ", Transliteration: "Suduri", Meaning: "The breasts/hearts"},
					{ID: "n5-5", Arabic: "النَّاسِ", Transliteration: "An-nas", Meaning: "Of Mankind"},
				},
				Distractors: []Distractor{
					{ID: "d5", Arabic: "الْجِنَّةِ", Transliteration: "Al-jinnati"},
				},
			},
			{
				ID:           "114-6",
				Surah:        114,
				Ayah:         6,
				ArabicFull:   "مِنَ الْجِنَّةِ وَالنَّاسِ",
				Translation:  `From among the jinn and mankind."`,
				Visual:       "jinn",
				TeachingNote: "Evil whispers can come from invisible Jinn or bad humans.",
				Words: []Word{
					{ID: "n6-1", Arabic: "مِنَ", Transliteration: "Mina", Meaning: "From"},
					{ID: "n6-2", Arabic: "الْجِنَّةِ", Transliteration: "Al-jinnati", Meaning: "The Jinn"},
					{ID: "n6-3", Arabic: "وَ", Transliteration: "Wa", Meaning: "And"},
					{ID: "n6-4", Arabic: "النَّاسِ", Transliteration: "An-nas", Meaning: "Mankind"},
				},
				Distractors: []Distractor{
					{ID: "d6", Arabic: "صُدُورِ", Transliteration: "Suduri"},
				},
			},
		},
	},
	{
		ID:      "falaq",
		Number:  113,
		Title:   "Al-Falaq",
		Meaning: "The Daybreak",
		Story: "This Surah teaches us that Allah is the Master of Daybreak. Just as He " +
			"splits the darkness of night to bring the morning, He can split your problems " +
			"and protect you from external dangers like magic, jealousy, and darkness.",
		Color:       "orange",
		TotalVerses: 5,
		Verses: []Verse{
			{
				ID:           "113-1",
				Surah:        113,
				Ayah:         1,
				ArabicFull:   "قُلْ أَعُوذُ بِرَبِّ الْفَلَقِ",
				Translation:  `Say, "I seek refuge in the Lord of daybreak"`,
				Visual:       "dawn",
				TeachingNote: "We seek safety with the One who controls the sunrise.",
				Words: []Word{
					{ID: "f1-1", Arabic: "قُلْ", Transliteration: "Qul", Meaning: "Say"},
					{ID: "f1-2", Arabic: "أَعُوذُ", Transliteration: "A'udhu", Meaning: "I seek refuge"},
					{ID: "f1-3", Arabic: "بِرَبِّ", Transliteration: "Bi-rabbi", Meaning: "In the Lord"},
					{ID: "f1-4", Arabic: "الْفَلَقِ", Transliteration: "Al-Falaq", Meaning: "Of Daybreak"},
				},
				Distractors: []Distractor{
					{ID: "fd1", Arabic: "غَاسِقٍ", Transliteration: "Ghasiqin"},
				},
			},
			{
				ID:           "113-2",
				Surah:        113,
				Ayah:         2,
				ArabicFull:   "مِن شَرِّ مَا خَلَقَ",
				Translation:  "From the evil of that which He created",
				Visual:       "evil",
				TeachingNote: "Protection from harmful animals, people, or anything created that causes harm.",
				Words: []Word{
					{ID: "f2-1", Arabic: "مِن", Transliteration: "Min", Meaning: "From"},
					{ID: "f2-2", Arabic: "شَرِّ", Transliteration: "Sharri", Meaning: "The evil"},
					{ID: "f2-3", Arabic: "مَا", Transliteration: "Ma", Meaning: "Of what"},
					{ID: "f2-4", Arabic: "خَلَقَ", Transliteration: "Khalaqa", Meaning: "He created"},
				},
				Distractors: []Distractor{
					{ID: "fd2", Arabic: "وَقَبَ", Transliteration: "Waqaba"},
				},
			},
			{
				ID:           "113-3",
				Surah:        113,
				Ayah:         3,
				ArabicFull:   "وَمِن شَرِّ غَاسِقٍ إِذَا وَقَبَ",
				Translation:  "And from the evil of darkness when it settles",
				Visual:       "night",
				TeachingNote: "Nighttime is when many dangers (like thieves or animals) are hidden.",
				Words: []Word{
					{ID: "f3-1", Arabic: "وَ", Transliteration: "Wa", Meaning: "And"},
					{ID: "f3-2", Arabic: "مِن", Transliteration: "Min", Meaning: "From"},
					{ID: "f3-3", Arabic: "شَرِّ", Transliteration: "Sharri", Meaning: "The evil"},
					{ID: "f3-4", Arabic: "غَاسِقٍ", Transliteration: "Ghasiqin", Meaning: "Of darkness"},
					{ID: "f3-5", Arabic: "إِذَا", Transliteration: "Idha", Meaning: "When"},
					{ID: "f3-6", Arabic: "وَقَبَ", Transliteration: "Waqaba", Meaning: "It settles"},
				},
				Distractors: []Distractor{
					{ID: "fd3", Arabic: "النَّفَّاثَاتِ", Transliteration: "An-naffathati"},
				},
			},
			{
				ID:           "113-4",
				Surah:        113,
				Ayah:         4,
				ArabicFull:   "وَمِن شَرِّ النَّفَّاثَاتِ فِي الْعُقَدِ",
				Translation:  "And from the evil of the blowers in knots",
				Visual:       "knot",
				TeachingNote: "Protection against magic and sorcery (those who blow on knots).",
				Words: []Word{
					{ID: "f4-1", Arabic: "وَ", Transliteration: "Wa", Meaning: "And"},
					{ID: "f4-2", Arabic: "مِن", Transliteration: "Min", Meaning: "From"},
					{ID: "f4-3", Arabic: "شَرِّ", Transliteration: "Sharri", Meaning: "The evil"},
					{ID: "f4-4", Arabic: "النَّفَّاثَاتِ", Transliteration: "An-naffathati", Meaning: "Of the blowers"},
					{ID: "f4-5", Arabic: "فِي", Transliteration: "Fi", Meaning: "In"},
					{ID: "f4-6", Arabic: "الْعُقَدِ", Transliteration: "Al-'uqad", Meaning: "The knots"},
				},
				Distractors: []Distractor{
					{ID: "fd4", Arabic: "حَاسِدٍ", Transliteration: "Hasidin"},
				},
			},
			{
				ID:           "113-5",
				Surah:        113,
				Ayah:         5,
				ArabicFull:   "وَمِن شَرِّ حَاسِدٍ إِذَا حَسَدَ",
				Translation:  `And from the evil of an envier when he envies."`,
				Visual:       "envy",
				TeachingNote: "Jealousy (Hasad) is dangerous. We seek Allah's protection from jealous eyes.",
				Words: []Word{
					{ID: "f5-1", Arabic: "وَ", Transliteration: "Wa", Meaning: "And"},
					{ID: "f5-2", Arabic: "مِن", Transliteration: "Min", Meaning: "From"},
					{ID: "f5-3", Arabic: "شَرِّ", Transliteration: "Sharri", Meaning: "The evil"},
					{ID: "f5-4", Arabic: "حَاسِدٍ", Transliteration: "Hasidin", Meaning: "Of an envier"},
					{ID: "f5-5", Arabic: "إِذَا", Transliteration: "Idha", Meaning: "When"},
					{ID: "f5-6", Arabic: "حَسَدَ", Transliteration: "Hasada", Meaning: "He envies"},
				},
				Distractors: []Distractor{
					{ID: "fd5", Arabic: "خَلَقَ", Transliteration: "Khalaqa"},
				},
			},
		},
	},
	{
		ID:      "ikhlas",
		Number:  112,
		Title:   "Al-Ikhlas",
		Meaning: "The Sincerity",
		Story: "This Surah is equal to one-third of the Quran. It defines who Allah is " +
			"in the purest form: He is One, He needs no one, He has no family, and there " +
			"is absolutely nothing like Him.",
		Color:       "emerald",
		TotalVerses: 4,
		Verses: []Verse{
			{
				ID:           "112-1",
				Surah:        112,
				Ayah:         1,
				ArabicFull:   "قُلْ هُوَ اللَّهُ أَحَدٌ",
				Translation:  `Say, "He is Allah, [who is] One,"`,
				Visual:       "oneness",
				TeachingNote: "Ahad means absolute Oneness. There is no second.",
				Words: []Word{
					{ID: "i1-1", Arabic: "قُلْ", Transliteration: "Qul", Meaning: "Say"},
					{ID: "i1-2", Arabic: "هُوَ", Transliteration: "Huwa", Meaning: "He is"},
					{ID: "i1-3", Arabic: "اللَّهُ", Transliteration: "Allahu", Meaning: "Allah"},
					{ID: "i1-4", Arabic: "أَحَدٌ", Transliteration: "Ahad", Meaning: "One"},
				},
				Distractors: []Distractor{
					{ID: "id1", Arabic: "الصَّمَدُ", Transliteration: "As-Samad"},
				},
			},
			{
				ID:           "112-2",
				Surah:        112,
				Ayah:         2,
				ArabicFull:   "اللَّهُ الصَّمَدُ",
				Translation:  "Allah, the Eternal Refuge.",
				Visual:       "default",
				TeachingNote: "As-Samad means the One who needs nothing, but everything needs Him.",
				Words: []Word{
					{ID: "i2-1", Arabic: "اللَّهُ", Transliteration: "Allahu", Meaning: "Allah"},
					{ID: "i2-2", Arabic: "الصَّمَدُ", Transliteration: "As-Samad", Meaning: "The Eternal Refuge"},
				},
				Distractors: []Distractor{
					{ID: "id2", Arabic: "كُفُوًا", Transliteration: "Kufuwan"},
				},
			},
			{
				ID:           "112-3",
				Surah:        112,
				Ayah:         3,
				ArabicFull:   "لَمْ يَلِدْ وَلَمْ يُولَدْ",
				Translation:  "He neither begets nor is born,",
				Visual:       "default",
				TeachingNote: "Allah has no parents and no children. He is eternal.",
				Words: []Word{
					{ID: "i3-1", Arabic: "لَمْ", Transliteration: "Lam", Meaning: "Did not"},
					{ID: "i3-2", Arabic: "يَلِدْ", Transliteration: "Yalid", Meaning: "Beget (give birth)"},
					{ID: "i3-3", Arabic: "وَ", Transliteration: "Wa", Meaning: "And"},
					{ID: "i3-4", Arabic: "لَمْ", Transliteration: "Lam", Meaning: "Did not"},
					{ID: "i3-5", Arabic: "يُولَدْ", Transliteration: "Yulad", Meaning: "Be born"},
				},
				Distractors: []Distractor{
					{ID: "id3", Arabic: "أَحَدٌ", Transliteration: "Ahad"},
				},
			},
			{
				ID:           "112-4",
				Surah:        112,
				Ayah:         4,
				ArabicFull:   "وَلَمْ يَكُن لَّهُ كُفُوًا أَحَدٌ",
				Translation:  `Nor is there to Him any equivalent."`,
				Visual:       "oneness",
				TeachingNote: "There is nothing comparable to Him in the entire universe.",
				Words: []Word{
					{ID: "i4-1", Arabic: "وَ", Transliteration: "Wa", Meaning: "And"},
					{ID: "i4-2", Arabic: "لَمْ", Transliteration: "Lam", Meaning: "Not"},
					{ID: "i4-3", Arabic: "يَكُن", Transliteration: "Yakun", Meaning: "Is"},
					{ID: "i4-4", Arabic: "لَّهُ", Transliteration: "Lahu", Meaning: "For Him"},
					{ID: "i4-5", Arabic: "كُفُوًا", Transliteration: "Kufuwan", Meaning: "Equivalent"},
					{ID: "i4-6", Arabic: "أَحَدٌ", Transliteration: "Ahad", Meaning: "Anyone"},
				},
				Distractors: []Distractor{
					{ID: "id4", Arabic: "يُولَدْ", Transliteration: "Yulad"},
				},
			},
		},
	},
	{
		ID:      "masad",
		Number:  111,
		Title:   "Al-Masad",
		Meaning: "The Palm Fiber",
		Story: "A warning against arrogance and enmity toward the Truth. It specifically " +
			"addresses Abu Lahab, who opposed the Prophet (SAW), showing that wealth and " +
			"status cannot save a person from divine justice.",
		Color:       "rose",
		TotalVerses: 5,
		Verses: []Verse{
			{
				ID:           "111-1",
				Surah:        111,
				Ayah:         1,
				ArabicFull:   "تَبَّتْ يَدَا أَبِي لَهَبٍ وَتَبَّ",
				Translation:  "May the hands of Abu Lahab be ruined, and ruined is he.",
				Visual:       "fire",
				TeachingNote: "Opposing the truth leads to ultimate loss.",
				Words: []Word{
					{ID: "m1-1", Arabic: "تَبَّتْ", Transliteration: "Tabbat", Meaning: "Ruined/Perish"},
					{ID: "m1-2", Arabic: "يَدَا", Transliteration: "Yada", Meaning: "The hands"},
					{ID: "m1-3", Arabic: "أَبِي لَهَبٍ", Transliteration: "Abi Lahab", Meaning: "Of Abu Lahab"},
					{ID: "m1-4", Arabic: "وَتَبَّ", Transliteration: "Wa-tab", Meaning: "And ruined is he"},
				},
				Distractors: []Distractor{
					{ID: "md1", Arabic: "مَا", Transliteration: "Ma"},
				},
			},
			{
				ID:           "111-2",
				Surah:        111,
				Ayah:         2,
				ArabicFull:   "مَا أَغْنَىٰ عَنْهُ مَالُهُ وَمَا كَسَبَ",
				Translation:  "His wealth will not avail him or that which he gained.",
				Visual:       "wealth",
				TeachingNote: "Money cannot buy safety from Allah.",
				Words: []Word{
					{ID: "m2-1", Arabic: "مَا", Transliteration: "Ma", Meaning: "Not"},
					{ID: "m2-2", Arabic: "أَغْنَىٰ", Transliteration: "Aghna", Meaning: "Avail/Help"},
					{ID: "m2-3", Arabic: "عَنْهُ", Transliteration: "Anhu", Meaning: "Him"},
					{ID: "m2-4", Arabic: "مَالُهُ", Transliteration: "Maluhu", Meaning: "His wealth"},
					{ID: "m2-5", Arabic: "وَمَا", Transliteration: "Wa-ma", Meaning: "And what"},
					{ID: "m2-6", Arabic: "كَسَبَ", Transliteration: "Kasaba", Meaning: "He earned"},
				},
			},
			{
				ID:           "111-3",
				Surah:        111,
				Ayah:         3,
				ArabicFull:   "سَيَصْلَىٰ نَارًا ذَاتَ لَهَبٍ",
				Translation:  "He will [enter to] burn in a Fire of [blazing] flame.",
				Visual:       "fire",
				TeachingNote: `A specific punishment matching his name "Father of Flame".`,
				Words: []Word{
					{ID: "m3-1", Arabic: "سَيَصْلَىٰ", Transliteration: "Sa-yasla", Meaning: "He will burn"},
					{ID: "m3-2", Arabic: "نَارًا", Transliteration: "Naran", Meaning: "In a Fire"},
					{ID: "m3-3", Arabic: "ذَاتَ", Transliteration: "Dhata", Meaning: "Of"},
					{ID: "m3-4", Arabic: "لَهَبٍ", Transliteration: "Lahab", Meaning: "Flame"},
				},
			},
			{
				ID:           "111-4",
				Surah:        111,
				Ayah:         4,
				ArabicFull:   "وَامْرَأَتُهُ حَمَّالَةَ الْحَطَبِ",
				Translation:  "And his wife [as well] - the carrier of firewood.",
				Visual:       "wood",
				TeachingNote: "She aided in doing bad, so she shares the fate.",
				Words: []Word{
					{ID: "m4-1", Arabic: "وَ", Transliteration: "Wa", Meaning: "And"},
					{ID: "m4-2", Arabic: "امْرَأَتُهُ", Transliteration: "Imra-atuhu", Meaning: "His wife"},
					{ID: "m4-3", Arabic: "حَمَّالَةَ", Transliteration: "Hammalata", Meaning: "Carrier of"},
					{ID: "m4-4", Arabic: "الْحَطَبِ", Transliteration: "Al-hatab", Meaning: "The firewood"},
				},
			},
			{
				ID:           "111-5",
				Surah:        111,
				Ayah:         5,
				ArabicFull:   "فِي جِيدِهَا حَبْلٌ مِّن مَّسَدٍ",
				Translation:  "Around her neck is a rope of [twisted] fiber.",
				Visual:       "rope",
				TeachingNote: "The symbol of her pride (necklace) becomes her punishment.",
				Words: []Word{
					{ID: "m5-1", Arabic: "فِي", Transliteration: "Fi", Meaning: "In"},
					{ID: "m5-2", Arabic: "جِيدِهَا", Transliteration: "Jidi-ha", Meaning: "Her neck"},
					{ID: "m5-3", Arabic: "حَبْلٌ", Transliteration: "Hablun", Meaning: "A rope"},
					{ID: "m5-4", Arabic: "مِّن", Transliteration: "Min", Meaning: "Of"},
					{ID: "m5-5", Arabic: "مَّسَدٍ", Transliteration: "Masad", Meaning: "Fiber"},
				},
			},
		},
	},
	{
		ID:      "nasr",
		Number:  110,
		Title:   "An-Nasr",
		Meaning: "The Divine Support",
		Story: "This Surah announced the coming victory of Islam and the conquest of " +
			"Makkah. It teaches us that when we succeed, we should not be arrogant, but " +
			"instead turn to Allah in gratitude and seek forgiveness.",
		Color:       "blue",
		TotalVerses: 3,
		Verses: []Verse{
			{
				ID:           "110-1",
				Surah:        110,
				Ayah:         1,
				ArabicFull:   "إِذَا جَاءَ نَصْرُ اللَّهِ وَالْفَتْحُ",
				Translation:  "When the victory of Allah has come and the conquest,",
				Visual:       "victory",
				TeachingNote: "Victory comes only when Allah wills it.",
				Words: []Word{
					{ID: "ns1-1", Arabic: "إِذَا", Transliteration: "Idha", Meaning: "When"},
					{ID: "ns1-2", Arabic: "جَاءَ", Transliteration: "Jaa-a", Meaning: "Comes"},
					{ID: "ns1-3", Arabic: "نَصْرُ", Transliteration: "Nasru", Meaning: "Victory"},
					{ID: "ns1-4", Arabic: "اللَّهِ", Transliteration: "Allahi", Meaning: "Of Allah"},
					{ID: "ns1-5", Arabic: "وَالْفَتْحُ", Transliteration: "Wal-fath", Meaning: "And the conquest"},
				},
			},
			{
				ID:           "110-2",
				Surah:        110,
				Ayah:         2,
				ArabicFull:   "وَرَأَيْتَ النَّاسَ يَدْخُلُونَ فِي دِينِ اللَّهِ أَفْوَاجًا",
				Translation:  "And you see the people entering into the religion of Allah in multitudes,",
				Visual:       "people",
				TeachingNote: "People will accept the truth in large groups.",
				Words: []Word{
					{ID: "ns2-1", Arabic: "وَرَأَيْتَ", Transliteration: "Wa-ra-aita", Meaning: "And you see"},
					{ID: "ns2-2", Arabic: "النَّاسَ", Transliteration: "An-nasa", Meaning: "The people"},
					{ID: "ns2-3", Arabic: "يَدْخُلُونَ", Transliteration: "Yadkhuluna", Meaning: "Entering"},
					{ID: "ns2-4", Arabic: "فِي", Transliteration: "Fi", Meaning: "In"},
					{ID: "ns2-5", Arabic: "دِينِ", Transliteration: "Dini", Meaning: "Religion"},
					{ID: "ns2-6", Arabic: "اللَّهِ", Transliteration: "Allahi", Meaning: "Of Allah"},
					{ID: "ns2-7", Arabic: "أَفْوَاجًا", Transliteration: "Afwajan", Meaning: "In multitudes"},
				},
			},
			{
				ID:           "110-3",
				Surah:        110,
				Ayah:         3,
				ArabicFull:   "فَسَبِّحْ بِحَمْدِ رَبِّكَ وَاسْتَغْفِرْهُ ۚ إِنَّهُ كَانَ تَوَّابًا",
				Translation:  "Then exalt [Him] with praise of your Lord and ask forgiveness of Him. Indeed, He is ever Accepting of repentance.",
				Visual:       "praise",
				TeachingNote: "The correct response to success is tasbih (praise) and istighfar (repentance).",
				Words: []Word{
					{ID: "ns3-1", Arabic: "فَسَبِّحْ", Transliteration: "Fa-sabbih", Meaning: "Then exalt"},
					{ID: "ns3-2", Arabic: "بِحَمْدِ", Transliteration: "Bi-hamdi", Meaning: "With praise"},
					{ID: "ns3-3", Arabic: "رَبِّكَ", Transliteration: "Rabbika", Meaning: "Of your Lord"},
					{ID: "ns3-4", Arabic: "وَاسْتَغْفِرْهُ", Transliteration: "Wastaghfirhu", Meaning: "And seek His forgiveness"},
					{ID: "ns3-5", Arabic: "إِنَّهُ", Transliteration: "Innahu", Meaning: "Indeed He"},
					{ID: "ns3-6", Arabic: "كَانَ", Transliteration: "Kana", Meaning: "Is"},
					{ID: "ns3-7", Arabic: "تَوَّابًا", Transliteration: "Tawwaba", Meaning: "Accepting of repentance"},
				},
			},
		},
	},
	{
		ID:      "kafirun",
		Number:  109,
		Title:   "Al-Kafirun",
		Meaning: "The Disbelievers",
		Story: "This Surah was a firm response to the disbelievers who asked the Prophet " +
			"(SAW) to compromise on his faith. It establishes clear boundaries: we respect " +
			"others, but we never compromise on the Oneness of Allah.",
		Color:       "slate",
		TotalVerses: 6,
		Verses: []Verse{
			{
				ID:           "109-1",
				Surah:        109,
				Ayah:         1,
				ArabicFull:   "قُلْ يَا أَيُّهَا الْكَافِرُونَ",
				Translation:  `Say, "O disbelievers,`,
				Visual:       "stop",
				TeachingNote: "A clear address to those who reject the truth.",
				Words: []Word{
					{ID: "k1-1", Arabic: "قُلْ", Transliteration: "Qul", Meaning: "Say"},
					{ID: "k1-2", Arabic: "يَا أَيُّهَا", Transliteration: "Ya-ayyuha", Meaning: "O you"},
					{ID: "k1-3", Arabic: "الْكَافِرُونَ", Transliteration: "Al-kafirun", Meaning: "The disbelievers"},
				},
			},
			{
				ID:           "109-2",
				Surah:        109,
				Ayah:         2,
				ArabicFull:   "لَا أَعْبُدُ مَا تَعْبُدُونَ",
				Translation:  "I do not worship what you worship.",
				Visual:       "worship",
				TeachingNote: "Total rejection of false gods.",
				Words: []Word{
					{ID: "k2-1", Arabic: "لَا", Transliteration: "La", Meaning: "No / I do not"},
					{ID: "k2-2", Arabic: "أَعْبُدُ", Transliteration: "A'budu", Meaning: "Worship"},
					{ID: "k2-3", Arabic: "مَا", Transliteration: "Ma", Meaning: "What"},
					{ID: "k2-4", Arabic: "تَعْبُدُونَ", Transliteration: "Ta'budun", Meaning: "You worship"},
				},
			},
			{
				ID:           "109-3",
				Surah:        109,
				Ayah:         3,
				ArabicFull:   "وَلَا أَنتُمْ عَابِدُونَ مَا أَعْبُدُ",
				Translation:  "Nor are you worshippers of what I worship.",
				Visual:       "distinction",
				TeachingNote: "You cannot worship Allah while associating partners with Him.",
				Words: []Word{
					{ID: "k3-1", Arabic: "وَلَا", Transliteration: "Wa-la", Meaning: "And not"},
					{ID: "k3-2", Arabic: "أَنتُمْ", Transliteration: "Antum", Meaning: "You"},
					{ID: "k3-3", Arabic: "عَابِدُونَ", Transliteration: "Abiduna", Meaning: "Worshippers"},
					{ID: "k3-4", Arabic: "مَا", Transliteration: "Ma", Meaning: "Of what"},
					{ID: "k3-5", Arabic: "أَعْبُدُ", Transliteration: "A'bud", Meaning: "I worship"},
				},
			},
			{
				ID:           "109-4",
				Surah:        109,
				Ayah:         4,
				ArabicFull:   "وَلَا أَنَا عَابِدٌ مَّا عَبَدتُّمْ",
				Translation:  "Nor will I be a worshipper of what you worship.",
				Visual:       "firmness",
				TeachingNote: "I will never change my stance in the future.",
				Words: []Word{
					{ID: "k4-1", Arabic: "وَلَا", Transliteration: "Wa-la", Meaning: "And not"},
					{ID: "k4-2", Arabic: "أَنَا", Transliteration: "Ana", Meaning: "I"},
					{ID: "k4-3", Arabic: "عَابِدٌ", Transliteration: "Abidum", Meaning: "Worshipper"},
					{ID: "k4-4", Arabic: "مَّا", Transliteration: "Ma", Meaning: "Of what"},
					{ID: "k4-5", Arabic: "عَبَدتُّمْ", Transliteration: "Abadtum", Meaning: "You worshipped"},
				},
			},
			{
				ID:           "109-5",
				Surah:        109,
				Ayah:         5,
				ArabicFull:   "وَلَا أَنتُمْ عَابِدُونَ مَا أَعْبُدُ",
				Translation:  "Nor will you be worshippers of what I worship.",
				Visual:       "firmness",
				TeachingNote: "Repeated for emphasis and finality.",
				Words: []Word{
					{ID: "k5-1", Arabic: "وَلَا", Transliteration: "Wa-la", Meaning: "And not"},
					{ID: "k5-2", Arabic: "أَنتُمْ", Transliteration: "Antum", Meaning: "You"},
					{ID: "k5-3", Arabic: "عَابِدُونَ", Transliteration: "Abiduna", Meaning: "Worshippers"},
					{ID: "k5-4", Arabic: "مَا", Transliteration: "Ma", Meaning: "Of what"},
					{ID: "k5-5", Arabic: "أَعْبُدُ", Transliteration: "A'bud", Meaning: "I worship"},
				},
			},
			{
				ID:           "109-6",
				Surah:        109,
				Ayah:         6,
				ArabicFull:   "لَكُمْ دِينُكُمْ وَلِيَ دِينِ",
				Translation:  `For you is your religion, and for me is my religion."`,
				Visual:       "separation",
				TeachingNote: "Complete detachment from false beliefs.",
				Words: []Word{
					{ID: "k6-1", Arabic: "لَكُمْ", Transliteration: "Lakum", Meaning: "For you"},
					{ID: "k6-2", Arabic: "دِينُكُمْ", Transliteration: "Dinukum", Meaning: "Your religion"},
					{ID: "k6-3", Arabic: "وَلِيَ", Transliteration: "Wa-liya", Meaning: "And for me"},
					{ID: "k6-4", Arabic: "دِينِ", Transliteration: "Din", Meaning: "My religion"},
				},
			},
		},
	},
}
