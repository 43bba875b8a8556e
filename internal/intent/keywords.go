package intent

// Keyword lists for the fallback classifier. Matching is case-insensitive
// substring containment against the lowered message; no tokenization.
var (
	greetingWords = []string{
		"hello", "hi", "hey", "good morning", "good afternoon",
		"good evening", "howdy", "greetings",
	}

	negativeWords = []string{
		"sad", "depressed", "unhappy", "stress", "anxiety", "lonely",
		"tired", "angry", "worried", "overwhelmed", "anxious", "fear",
		"scared", "upset", "down", "blue", "miserable", "hopeless",
		"helpless", "frustrated",
	}

	positiveWords = []string{
		"happy", "joy", "joyful", "glad", "excited", "content",
		"grateful", "thankful", "good", "great", "wonderful", "amazing",
		"fantastic", "excellent", "blessed", "cheerful", "delighted",
		"pleased", "satisfied", "thrilled", "optimistic", "positive",
		"confident",
	}

	jokeWords = []string{
		"joke", "funny", "laugh", "humor", "comedy", "hilarious",
		"amuse", "entertain",
	}

	thanksWords = []string{"thank", "thanks", "appreciate", "grateful", "gratitude"}

	helpWords = []string{
		"help", "advice", "suggestion", "guidance", "assist", "support",
		"recommend", "what should i do", "how can i", "tips", "ideas",
	}

	wellnessWords = []string{
		"meditation", "exercise", "yoga", "mindfulness", "breathing",
		"relax", "calm", "peace", "wellness", "health", "self-care",
		"sleep", "rest",
	}

	questionWords = []string{
		"what", "how", "why", "when", "where", "who", "can you",
		"could you", "would you", "will you", "?",
	}

	musicWords = []string{
		"song", "music", "playlist", "recommend a song", "suggest a song",
		"recommend music", "suggest music", "listen to", "track", "tune",
		"melody", "recommend songs", "suggest songs",
	}

	centerWords = []string{
		"wellness center", "wellness centers", "mental health center",
		"mental health centers", "therapy center", "therapy centers",
		"counseling center", "counseling centers", "psychologist",
		"psychiatrist", "therapist", "counselor", "mental health clinic",
		"mental health clinics", "mental health service",
		"mental health services",
	}

	// locationIndicators are scanned in order when extracting a location
	// from a wellness-center request.
	locationIndicators = []string{"in", "near", "around", "close to", "nearby"}
)
