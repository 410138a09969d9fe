package numerology

import "divination/internal/domain"

var lifeNumberProfiles = []domain.LifeNumberProfile{
	{
		Number: 1, Name: "The Leader",
		Meaning:     "Independence, initiative and the drive to begin things.",
		Personality: []string{"self-reliant", "ambitious", "direct"},
		Strengths:   []string{"leadership", "determination", "originality"},
		Weaknesses:  []string{"stubbornness", "impatience", "self-centredness"},
		Career:      []string{"founder", "manager", "inventor"},
		Love:        []string{"needs a partner who respects their independence"},
		Health:      []string{"stress from overwork", "headaches"},
		LuckyColors: []string{"red", "gold"},
		LuckyStones: []string{"ruby", "garnet"},
		Compatible:  []int{3, 5, 6, 9},
	},
	{
		Number: 2, Name: "The Diplomat",
		Meaning:     "Cooperation, balance and sensitivity to others.",
		Personality: []string{"gentle", "tactful", "supportive"},
		Strengths:   []string{"diplomacy", "patience", "intuition"},
		Weaknesses:  []string{"indecision", "oversensitivity", "dependence"},
		Career:      []string{"mediator", "counsellor", "teacher"},
		Love:        []string{"devoted partner who values harmony"},
		Health:      []string{"nervous tension", "digestion"},
		LuckyColors: []string{"silver", "white"},
		LuckyStones: []string{"moonstone", "pearl"},
		Compatible:  []int{2, 4, 6, 8},
	},
	{
		Number: 3, Name: "The Communicator",
		Meaning:     "Creativity, expression and joy in social life.",
		Personality: []string{"expressive", "optimistic", "sociable"},
		Strengths:   []string{"creativity", "charm", "humour"},
		Weaknesses:  []string{"scattered focus", "superficiality", "extravagance"},
		Career:      []string{"writer", "performer", "designer"},
		Love:        []string{"playful romantic who needs variety"},
		Health:      []string{"throat", "burnout from overcommitment"},
		LuckyColors: []string{"yellow", "purple"},
		LuckyStones: []string{"topaz", "amethyst"},
		Compatible:  []int{1, 3, 5, 6, 9},
	},
	{
		Number: 4, Name: "The Builder",
		Meaning:     "Order, discipline and steady foundations.",
		Personality: []string{"practical", "methodical", "loyal"},
		Strengths:   []string{"reliability", "organisation", "endurance"},
		Weaknesses:  []string{"rigidity", "caution", "workaholism"},
		Career:      []string{"engineer", "accountant", "architect"},
		Love:        []string{"steady partner who shows care through actions"},
		Health:      []string{"back and joints", "tension"},
		LuckyColors: []string{"green", "brown"},
		LuckyStones: []string{"emerald", "jade"},
		Compatible:  []int{2, 6, 7, 8},
	},
	{
		Number: 5, Name: "The Adventurer",
		Meaning:     "Freedom, change and curiosity about the world.",
		Personality: []string{"restless", "versatile", "curious"},
		Strengths:   []string{"adaptability", "resourcefulness", "courage"},
		Weaknesses:  []string{"inconsistency", "impulsiveness", "restlessness"},
		Career:      []string{"traveller", "journalist", "salesperson"},
		Love:        []string{"needs freedom and shared adventures"},
		Health:      []string{"nervous system", "overindulgence"},
		LuckyColors: []string{"turquoise", "light grey"},
		LuckyStones: []string{"aquamarine", "diamond"},
		Compatible:  []int{1, 3, 5, 7},
	},
	{
		Number: 6, Name: "The Nurturer",
		Meaning:     "Responsibility, care and devotion to home and community.",
		Personality: []string{"caring", "protective", "responsible"},
		Strengths:   []string{"compassion", "loyalty", "harmony"},
		Weaknesses:  []string{"self-sacrifice", "worry", "control"},
		Career:      []string{"healer", "teacher", "social worker"},
		Love:        []string{"committed partner who builds a home"},
		Health:      []string{"heart", "stress from caring for others"},
		LuckyColors: []string{"blue", "pink"},
		LuckyStones: []string{"sapphire", "rose quartz"},
		Compatible:  []int{1, 2, 3, 4, 9},
	},
	{
		Number: 7, Name: "The Seeker",
		Meaning:     "Introspection, analysis and the search for truth.",
		Personality: []string{"thoughtful", "reserved", "analytical"},
		Strengths:   []string{"insight", "wisdom", "focus"},
		Weaknesses:  []string{"aloofness", "scepticism", "isolation"},
		Career:      []string{"researcher", "scientist", "philosopher"},
		Love:        []string{"needs intellectual connection and space"},
		Health:      []string{"insomnia", "mental fatigue"},
		LuckyColors: []string{"violet", "sea green"},
		LuckyStones: []string{"amethyst", "cat's eye"},
		Compatible:  []int{4, 5, 7},
	},
	{
		Number: 8, Name: "The Executive",
		Meaning:     "Power, ambition and material mastery.",
		Personality: []string{"authoritative", "goal-driven", "confident"},
		Strengths:   []string{"management", "vision", "resilience"},
		Weaknesses:  []string{"materialism", "impatience", "domination"},
		Career:      []string{"executive", "banker", "entrepreneur"},
		Love:        []string{"loyal provider who must make time for intimacy"},
		Health:      []string{"blood pressure", "overwork"},
		LuckyColors: []string{"black", "dark blue"},
		LuckyStones: []string{"sapphire", "onyx"},
		Compatible:  []int{2, 4, 6},
	},
	{
		Number: 9, Name: "The Humanitarian",
		Meaning:     "Compassion, idealism and completion of cycles.",
		Personality: []string{"generous", "idealistic", "tolerant"},
		Strengths:   []string{"empathy", "generosity", "vision"},
		Weaknesses:  []string{"martyrdom", "moodiness", "impracticality"},
		Career:      []string{"artist", "activist", "doctor"},
		Love:        []string{"romantic who loves broadly and deeply"},
		Health:      []string{"fevers", "emotional exhaustion"},
		LuckyColors: []string{"crimson", "white"},
		LuckyStones: []string{"bloodstone", "coral"},
		Compatible:  []int{1, 3, 6, 9},
	},
	{
		Number: 11, Name: "The Illuminator",
		Meaning:     "Master number of intuition, inspiration and spiritual insight.",
		Personality: []string{"visionary", "sensitive", "inspiring"},
		Strengths:   []string{"intuition", "idealism", "charisma"},
		Weaknesses:  []string{"nervous tension", "self-doubt", "impracticality"},
		Career:      []string{"spiritual teacher", "artist", "counsellor"},
		Love:        []string{"seeks a deep soul connection"},
		Health:      []string{"anxiety", "sleep"},
		LuckyColors: []string{"silver", "pale blue"},
		LuckyStones: []string{"moonstone", "clear quartz"},
		Compatible:  []int{2, 4, 6, 22},
	},
	{
		Number: 22, Name: "The Master Builder",
		Meaning:     "Master number that turns large visions into lasting structures.",
		Personality: []string{"disciplined", "visionary", "pragmatic"},
		Strengths:   []string{"execution", "leadership", "vision"},
		Weaknesses:  []string{"pressure", "overreach", "rigidity"},
		Career:      []string{"architect", "statesman", "founder"},
		Love:        []string{"steadfast partner who shares a long-term plan"},
		Health:      []string{"stress", "exhaustion"},
		LuckyColors: []string{"coral", "cream"},
		LuckyStones: []string{"coral", "jade"},
		Compatible:  []int{4, 8, 11},
	},
	{
		Number: 33, Name: "The Master Teacher",
		Meaning:     "Master number of compassion, healing and selfless service.",
		Personality: []string{"nurturing", "selfless", "wise"},
		Strengths:   []string{"compassion", "guidance", "healing"},
		Weaknesses:  []string{"self-neglect", "burden-carrying", "perfectionism"},
		Career:      []string{"healer", "teacher", "humanitarian"},
		Love:        []string{"unconditional and devoted partner"},
		Health:      []string{"fatigue from giving too much"},
		LuckyColors: []string{"deep blue", "gold"},
		LuckyStones: []string{"lapis lazuli", "turquoise"},
		Compatible:  []int{6, 9, 11},
	},
}

var profileIndex = func() map[int]int {
	idx := make(map[int]int, len(lifeNumberProfiles))
	for i, p := range lifeNumberProfiles {
		idx[p.Number] = i
	}
	return idx
}()

// LifeNumberProfiles returns every profile, base digits first.
func LifeNumberProfiles() []domain.LifeNumberProfile {
	out := make([]domain.LifeNumberProfile, len(lifeNumberProfiles))
	for i, p := range lifeNumberProfiles {
		out[i] = p.Clone()
	}
	return out
}

// LifeNumberProfile looks up the profile for n.
func LifeNumberProfile(n int) (domain.LifeNumberProfile, bool) {
	i, ok := profileIndex[n]
	if !ok {
		return domain.LifeNumberProfile{}, false
	}
	return lifeNumberProfiles[i].Clone(), true
}
