// Package names holds the Asma ul-Husna browser content and the per-visit
// reflection reward bookkeeping.
package names

// ReflectionXP is awarded the first time a name is reflected on in a visit.
const ReflectionXP = 5

// Name is one of the Names of Allah with a practical reflection prompt.
type Name struct {
	Number          int
	Arabic          string
	Transliteration string
	Meaning         string
	Reflection      string
}

// All returns the authored names in canonical order. The full list has 99
// entries; the curriculum currently authors the first twelve.
func All() []Name {
	return allNames
}

// ByNumber returns the name with the given ordinal, or false if unknown.
func ByNumber(n int) (Name, bool) {
	for _, nm := range allNames {
		if nm.Number == n {
			return nm, true
		}
	}
	return Name{}, false
}

// Visit tracks which names were reflected on since the browser was opened,
// so the XP reward is granted at most once per name per visit.
type Visit struct {
	reflected map[int]bool
}

// NewVisit starts a fresh browsing session.
func NewVisit() *Visit {
	return &Visit{reflected: make(map[int]bool)}
}

// Reflect records a reflection on the given name. It returns true when the
// reward should be granted, false for repeats within the same visit.
func (v *Visit) Reflect(number int) bool {
	if v.reflected[number] {
		return false
	}
	v.reflected[number] = true
	return true
}

// Reflected reports whether the given name was already reflected on
// during this visit.
func (v *Visit) Reflected(number int) bool {
	return v.reflected[number]
}

var allNames = []Name{
	{1, "الرَّحْمَنُ", "Ar-Rahman", "The Most Compassionate",
		"Show immense compassion to all of creation, regardless of who they are or what they have done. Be a source of comfort to others."},
	{2, "الرَّحِيمُ", "Ar-Raheem", "The Most Merciful",
		"Be specifically merciful in your actions. Forgive those who wrong you and do not hold grudges in your heart."},
	{3, "الْمَلِكُ", "Al-Malik", "The King / Sovereign",
		"Remember that true ownership belongs to Allah. Do not become arrogant about your wealth, status, or possessions."},
	{4, "الْقُدُّوسُ", "Al-Quddus", "The Most Holy / Pure",
		"Purify your heart from envy, anger, and arrogance. Keep your body, mind, and surroundings clean."},
	{5, "السَّلَامُ", "As-Salam", "The Source of Peace",
		"Be a peacemaker. Spread the greeting of peace, resolve conflicts among friends, and cultivate inner peace through prayer."},
	{6, "الْمُؤْمِنُ", "Al-Mu'min", "The Guarantor of Security",
		"Be a trustworthy person. Ensure that people feel safe from your tongue, your hands, and your judgment."},
	{7, "الْمُهَيْمِنُ", "Al-Muhaymin", "The Guardian / Overseer",
		"Watch over your own soul and actions carefully. Be a protective guardian for the vulnerable people around you."},
	{8, "الْعَزِيزُ", "Al-Aziz", "The Almighty / Invincible",
		"Seek honor and strength only from Allah, not from the fleeting approval of society or social media."},
	{9, "الْجَبَّارُ", "Al-Jabbar", "The Compeller / Restorer",
		"Help mend broken hearts. If you see someone who is emotionally or financially broken, be the one who helps restore them."},
	{10, "الْمُتَكَبِّرُ", "Al-Mutakabbir", "The Supreme / Majestic",
		"Humble yourself entirely. Realize that true greatness belongs to Allah alone, and ego has no place in a believer's heart."},
	{11, "الْخَالِقُ", "Al-Khaliq", "The Creator",
		"Reflect on the beauty of nature. Look at the sky, the trees, and your own body, and appreciate the perfect design of the Creator."},
	{12, "الْبَارِئُ", "Al-Bari", "The Maker of Order",
		"Bring order to your life. Respect the delicate balance Allah has placed in the universe by not being wasteful."},
}
