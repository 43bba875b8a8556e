package catalog

// songsByMood maps each supported mood to its recommendation pool. A few
// records carry explicit links; the rest rely on synthesized search URLs.
var songsByMood = map[string][]Song{
	"happy": {
		{Title: "Happy", Artist: "Pharrell Williams", Link: "https://www.youtube.com/watch?v=ZbZSe6N_BXs"},
		{Title: "Walking on Sunshine", Artist: "Katrina & The Waves"},
		{Title: "Good Vibrations", Artist: "The Beach Boys"},
		{Title: "Uptown Funk", Artist: "Mark Ronson ft. Bruno Mars", Link: "https://www.youtube.com/watch?v=OPf0YbXqDm0"},
		{Title: "Can't Stop the Feeling!", Artist: "Justin Timberlake"},
	},
	"sad": {
		{Title: "Someone Like You", Artist: "Adele", Link: "https://www.youtube.com/watch?v=hLQl3WQQoQ0"},
		{Title: "Fix You", Artist: "Coldplay"},
		{Title: "Everybody Hurts", Artist: "R.E.M."},
		{Title: "The Night We Met", Artist: "Lord Huron"},
		{Title: "Skinny Love", Artist: "Bon Iver"},
	},
	"calm": {
		{Title: "Weightless", Artist: "Marconi Union", Link: "https://www.youtube.com/watch?v=UfcAVejslrU"},
		{Title: "Clair de Lune", Artist: "Claude Debussy"},
		{Title: "River Flows in You", Artist: "Yiruma"},
		{Title: "Holocene", Artist: "Bon Iver"},
		{Title: "Gymnopedie No. 1", Artist: "Erik Satie"},
	},
	"energetic": {
		{Title: "Eye of the Tiger", Artist: "Survivor", Link: "https://www.youtube.com/watch?v=btPJPFnesV4"},
		{Title: "Stronger", Artist: "Kanye West"},
		{Title: "Thunderstruck", Artist: "AC/DC"},
		{Title: "Lose Yourself", Artist: "Eminem"},
		{Title: "Don't Stop Me Now", Artist: "Queen"},
	},
	"focused": {
		{Title: "Time", Artist: "Hans Zimmer"},
		{Title: "Experience", Artist: "Ludovico Einaudi"},
		{Title: "Intro", Artist: "The xx"},
		{Title: "Strobe", Artist: "deadmau5"},
		{Title: "Divenire", Artist: "Ludovico Einaudi"},
	},
}
