package matcher

import "intent-chatbot/internal/models"

const UntrainedResponse = "I haven't been trained yet!"

// FallbackResponses are returned when no intent clears the threshold.
var FallbackResponses = []string{
	"I'm not sure I understand. Can you rephrase?",
	"That's interesting! Tell me more.",
	"I'm still learning. Could you ask differently?",
	"Could you explain that in another way?",
}

// DefaultDefinitions returns the built-in catalog. Each call returns a fresh copy.
func DefaultDefinitions() []models.IntentDefinition {
	return []models.IntentDefinition{
		{
			Tag:       "greeting",
			Patterns:  []string{"Hello", "Hi", "Hey", "Good morning", "Good afternoon"},
			Responses: []string{"Hello! How can I help you?", "Hi there! What can I do for you?", "Hey! How are you doing?"},
		},
		{
			Tag:       "goodbye",
			Patterns:  []string{"Bye", "Goodbye", "See you later", "Take care"},
			Responses: []string{"Goodbye! Have a great day!", "See you later!", "Take care!"},
		},
		{
			Tag:       "thanks",
			Patterns:  []string{"Thank you", "Thanks", "Thanks a lot", "I appreciate it"},
			Responses: []string{"You're welcome!", "My pleasure!", "Glad I could help!"},
		},
		{
			Tag:       "name",
			Patterns:  []string{"What is your name?", "Who are you?", "What should I call you?"},
			Responses: []string{"I'm your friendly chatbot!", "You can call me ChatBot!", "I'm a simple chatbot created to help students learn NLP!"},
		},
		{
			Tag:      "help",
			Patterns: []string{"Help", "What can you do?", "How can you help me?", "What are your functions?"},
			Responses: []string{
				"I can help you learn about chatbots and NLP! Try asking me about my features or just chat with me!",
				"I'm a basic chatbot that demonstrates NLP concepts. Ask me questions or try different greetings!",
			},
		},
		{
			Tag:      "courses",
			Patterns: []string{"What courses do you offer?", "What can I learn?", "Subjects", "Curriculum"},
			Responses: []string{
				"We offer courses in: 1. Python Programming 2. Web Development 3. Machine Learning 4. Natural Language Processing",
				"You can learn: Python, Flask, NLP basics, and chatbot development in this course!",
			},
		},
		{
			Tag:      "nlp",
			Patterns: []string{"What is NLP?", "Explain natural language processing"},
			Responses: []string{
				"NLP is Natural Language Processing - it helps computers understand human language!",
				"NLP stands for Natural Language Processing, a field of AI!",
			},
		},
		{
			Tag:       "creator",
			Patterns:  []string{"Who created you?", "Who made you?", "Who built you?"},
			Responses: []string{"I was created by students learning web deployment!", "I'm a student project for learning deployment!"},
		},
	}
}
