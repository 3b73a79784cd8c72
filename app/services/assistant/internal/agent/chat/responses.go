package chat

// Fixed replies for the small-talk rules and the degraded paths. The turn
// always completes with one of these when a collaborator cannot serve it.
const (
	greetingReply    = "Hello! I'm Restobot, your food assistant."
	statusReply      = "I'm doing great and ready to take your order!"
	capabilityReply  = "I can help you explore the menu and place food orders."
	noContextReply   = "Sorry, I couldn't find that in the dataset."
	unavailableReply = "Sorry, the assistant is temporarily unavailable. Please try again in a moment."
)

// answerSystemPrompt constrains open-question generation to the retrieved
// context. The model must decline rather than fabricate menu facts.
const answerSystemPrompt = "You are Restobot, a restaurant assistant bot. " +
	"Only answer using the provided context below; do not guess or make up information. " +
	"If you are unsure about a dish being on the menu, do not claim it is available " +
	"and ask the user to choose another item."

// menuQuery is the retrieval query used for every add, so additions always
// resolve against a freshly fetched generic menu context.
const menuQuery = "menu"

const (
	addPrefix    = "add "
	removePrefix = "remove "
	placePhrase  = "place order"
)

var greetingTokens = []string{"hi", "hello", "hey", "hii"}

var statusPhrases = []string{"how are you"}

var capabilityPhrases = []string{"how can you help", "what can you do"}

var reviewPhrases = []string{
	"review order",
	"review my cart",
	"what's in my cart",
	"order list",
	"display my order",
	"show my order",
	"display my cart",
	"my order list",
	"what is in my cart",
	"show order list",
	"cart items",
}
