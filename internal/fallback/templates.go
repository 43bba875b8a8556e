package fallback

import "github.com/solacebot/solace/internal/intent"

// templates holds the canned reply candidates per category. Selection is
// uniform random; any member is a valid reply for its category.
var templates = map[intent.Category][]string{
	intent.Greeting: {
		"Hello! How are you feeling today? I'm here to chat and support you.",
		"Hi there! I'm your mental health companion. How can I help you today?",
		"Hey! I'm here to listen and chat with you. How's your day going?",
		"Greetings! I'm here to provide support and a friendly conversation. How are you?",
	},
	intent.Positive: {
		"I'm so glad to hear you're feeling happy! Positive emotions are worth celebrating. What's bringing you joy today?",
		"That's wonderful to hear! Happiness is such an important emotion. Would you like to share what's contributing to your positive mood?",
		"It's great that you're feeling good! Acknowledging positive emotions can help us appreciate the good moments in life. What's making you feel this way?",
		"I'm happy to hear that! Positive emotions can be a great source of energy and resilience. What activities or experiences are bringing you joy?",
		"That's fantastic! Celebrating moments of happiness is important for mental wellbeing. Is there something specific that's brightened your day?",
	},
	intent.Negative: {
		"I'm sorry to hear you're feeling that way. Remember that it's okay to seek help when you need it. Would you like to talk more about what's bothering you?",
		"That sounds difficult. I want you to know that your feelings are valid, and it's okay to not be okay sometimes. Taking small steps toward self-care can help.",
		"I understand this is hard. Consider reaching out to a mental health professional who can provide proper support. In the meantime, deep breathing exercises might help you feel a bit calmer.",
		"It's brave of you to share your feelings. Remember that difficult emotions are a normal part of being human. Would talking about specific situations help?",
		"I hear you're struggling right now. Sometimes just acknowledging our feelings can be the first step toward feeling better. What's one small thing you could do today to care for yourself?",
	},
	intent.Joke: {
		"Why don't scientists trust atoms? Because they make up everything!",
		"What did the ocean say to the beach? Nothing, it just waved!",
		"Why did the scarecrow win an award? Because he was outstanding in his field!",
		"Why did the bicycle fall over? It was two-tired!",
		"What's orange and sounds like a parrot? A carrot!",
		"Why don't eggs tell jokes? They'd crack each other up!",
		"How does a penguin build its house? Igloos it together!",
		"What do you call a fake noodle? An impasta!",
	},
	intent.Thanks: {
		"You're welcome! I'm happy to help and chat with you anytime.",
		"It's my pleasure! I'm here whenever you need someone to talk to.",
		"I'm glad I could be of assistance. Feel free to reach out anytime you need support.",
		"You're very welcome! Taking care of your mental health is important, and I'm here to support you on that journey.",
	},
	intent.Help: {
		"I'd be happy to help. For mental health support, consider practices like deep breathing, mindfulness, or talking with trusted friends. Professional help is also valuable when needed.",
		"When you're struggling, remember the basics: good sleep, healthy food, physical activity, and social connection can all make a difference. What area would you like to focus on?",
		"Sometimes small changes can have big impacts on how we feel. Setting realistic goals, practicing gratitude, or spending time in nature might help. Would you like more specific suggestions?",
		"Support can come in many forms. Consider journaling, meditation apps, support groups, or professional therapy. What resources do you currently have access to?",
	},
	intent.Wellness: {
		"Wellness practices can be powerful tools for mental health. Even 5 minutes of deep breathing or meditation can help reduce stress and improve focus.",
		"Regular physical activity is one of the most effective ways to improve mood and reduce anxiety. Even a short walk can make a difference.",
		"Mindfulness helps us stay present instead of worrying about the past or future. Try focusing on your senses: what do you see, hear, feel, smell, and taste right now?",
		"Good sleep is essential for mental health. Try to maintain a regular sleep schedule and create a calming bedtime routine without screens.",
	},
	intent.Question: {
		"That's a good question. While I have limited responses right now, I'd be happy to chat about mental health topics like stress management, self-care, or emotional wellness.",
		"I wish I could give you a more detailed answer. Is there a specific aspect of mental health or wellbeing you'd like to discuss?",
		"I'd like to help with your question. Could you share more about what you're looking for? I can discuss topics like coping strategies, relaxation techniques, or general mental wellness.",
		"Great question. While I have some limitations, I can still chat about mental health basics, self-care practices, or emotional support strategies.",
	},
	intent.Default: {
		"I'm here to support you with mental health conversations. What's on your mind today?",
		"I'd love to chat about how you're feeling or any mental health topics you're interested in.",
		"I'm your mental health companion. Feel free to share what's on your mind or ask about wellness strategies.",
		"I'm here to listen and chat. Would you like to talk about how you're feeling today or discuss mental wellness strategies?",
		"I'm focused on supporting your mental wellbeing. What would you like to talk about today?",
	},
}

// Fixed single-string replies for the music branch.
const (
	moodPrompt = "I'd be happy to recommend some songs! What kind of mood are you in? " +
		"I can suggest music for moods like happy, sad, calm, energetic, focused, or relaxed."

	noSongs = "I'd be happy to recommend some songs! I can suggest music for different moods " +
		"like happy, sad, calm, energetic, focused, or relaxed. Which mood would you like songs for?"

	songClosing = "\nI hope these songs help enhance your mood! Let me know if you'd like more recommendations."
)

// Fixed fragments for the wellness-center branch. crisisNotice must appear
// verbatim in every center reply.
const (
	noCenters = "I don't have any specific wellness center recommendations at the moment. " +
		"You can search for 'mental health services near me' on Google: " +
		"https://www.google.com/search?q=mental+health+services+near+me"

	centerHeading = "Here are some wellness centers and mental health resources that might be helpful:\n\n"

	centerClosing = "Remember that this is not an exhaustive list, and I recommend searching for " +
		"'mental health services near me' on Google for more localized options: " +
		"https://www.google.com/search?q=mental+health+services+near+me\n\n"

	crisisNotice = "If you're experiencing a mental health emergency, please call the " +
		"988 Suicide & Crisis Lifeline at 988 or text HOME to 741741 to reach the Crisis Text Line."
)
