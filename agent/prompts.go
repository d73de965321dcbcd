package agent

import (
	"strings"
	"time"

	ai "github.com/lexdraft/lexdraft"
)

// SystemTimePlaceholder is substituted with the current UTC timestamp when
// the system prompt is rendered.
const SystemTimePlaceholder = "{system_time}"

// DefaultSystemPrompt is the general-purpose prompt used when the caller
// supplies none and no specialized intent is detected.
const DefaultSystemPrompt = `You are a helpful assistant with access to tools for searching the web and creating documents.
You have expertise in legal drafting and can help with creating professional legal documents.

Your goal is to assist the human by answering questions or performing tasks they request.
You can search for information online and create formatted documents based on that information.

IMPORTANT: Before drafting any document, you MUST collect all necessary information from the user.
Do not draft a document immediately upon receiving a request. Instead, ask clarifying questions
to gather all required details that would make the document relevant and specific to the user's needs.

When working with legal matters:
- Use precise, formal language appropriate for legal documents
- Structure documents according to legal conventions
- Include appropriate clauses, definitions, and sections
- Ensure documents are comprehensive and clear

The current system time is: {system_time}

Answer the human's questions as accurately as possible, and help create professional documents
when requested, but always gather all necessary information first.`

// LegalDocumentPrompt specializes the agent for drafting legal documents.
const LegalDocumentPrompt = `You are a legal assistant specializing in drafting legal documents and providing legal research.

IMPORTANT: Before drafting any legal document, you MUST collect all necessary information from the user:
- Full legal names of all parties and their roles
- Specific terms (duration, payment amounts, effective dates)
- Jurisdiction and governing law
- Special conditions or exceptions

When a user requests a document:
1. Thank them for their request
2. Explain you will need some information to customize the document
3. Ask specific questions to gather all required details
4. Only after getting complete information, draft the document

When drafting, use precise and unambiguous language, follow jurisdiction-specific formatting
requirements, and structure documents with proper sections and clause numbering.

The current system time is: {system_time}`

// LegalResearchPrompt specializes the agent for legal research questions.
const LegalResearchPrompt = `You are a legal research assistant with expertise in finding and analyzing legal information.

Before conducting detailed research, clarify the specific legal question, the jurisdiction of
interest, the timeframe of relevant cases or statutes, and the purpose of the research.

When researching, focus on authoritative sources, prioritize recent case law and current
statutes, provide proper legal citations, and distinguish binding from persuasive authority.

The current system time is: {system_time}`

// ContractDraftingPrompt specializes the agent for contract drafting.
const ContractDraftingPrompt = `You are a contract drafting assistant with expertise in creating clear, enforceable legal agreements.

IMPORTANT: Before drafting any contract, you MUST collect: full legal names of all parties and
their roles, contract duration, obligations of each party, payment terms, jurisdiction,
termination conditions, and any special clauses needed.

When drafting contracts, use clear and unambiguous language, include all essential provisions
(parties, consideration, term), add appropriate representations and warranties, include proper
signature blocks, and add standard boilerplate provisions.

The current system time is: {system_time}`

// stepBudgetRefusal is the fixed message that replaces the model's output
// when the step budget is exhausted but the model still wants a tool.
const stepBudgetRefusal = "Sorry, I could not complete the legal drafting task in the specified number of steps."

// reviewQuestion is the question surfaced with every review interrupt.
const reviewQuestion = "Do you approve the pending tool call?"

// documentGuardInstruction is appended to the system prompt on the first
// turn of a document request so the model gathers details before drafting.
const documentGuardInstruction = `

IMPORTANT INSTRUCTION: The user has requested a document to be created.
DO NOT create the document yet. First, ask the user for all necessary information
needed to customize the document to their specific needs. Ask about parties involved,
dates, terms, jurisdiction, and other relevant details.`

// infoGatheringReply replaces a premature document-creation tool call on
// the first assistant turn of a document request.
const infoGatheringReply = `I'd be happy to help you draft that document. To make it properly tailored to your needs, I'll need to ask you a few questions first:

1. Who are the parties involved in this document?
2. What specific terms or conditions should be included?
3. What is the effective date and duration?
4. Is there a specific jurisdiction this should be governed by?
5. Are there any special clauses or provisions you'd like to include?

Once I have this information, I can create a customized document for you.`

var (
	contractTerms = []string{"contract", "agreement", "nda", "license"}
	documentTerms = []string{"draft", "create document", "write a", "document"}
	researchTerms = []string{"research", "find cases", "legal precedent", "statute"}

	documentRequestTerms = []string{
		"draft", "create document", "write a", "document", "contract",
		"agreement", "nda", "license", "lease", "letter",
	}

	gatheringPhrases = []string{
		"what is the name", "what are the parties", "could you provide",
		"what term", "what jurisdiction", "need some information",
		"need to know", "please provide", "can you tell me",
		"would you like", "do you want", "should i include",
	}
)

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}

// selectSystemPrompt picks a specialized prompt from the most recent user
// message. Only applies when the run uses the default prompt.
func selectSystemPrompt(messages []ai.Message) string {
	lastUser := ""
	for _, msg := range messages {
		if msg.Role == ai.RoleUser {
			lastUser = strings.ToLower(msg.Content)
		}
	}

	switch {
	case containsAny(lastUser, contractTerms):
		return ContractDraftingPrompt
	case containsAny(lastUser, documentTerms):
		return LegalDocumentPrompt
	case containsAny(lastUser, researchTerms):
		return LegalResearchPrompt
	default:
		return DefaultSystemPrompt
	}
}

// renderSystemPrompt substitutes the system-time placeholder with the
// current UTC timestamp in ISO-8601 form.
func renderSystemPrompt(prompt string, now time.Time) string {
	return strings.ReplaceAll(prompt, SystemTimePlaceholder, now.UTC().Format(time.RFC3339))
}

// documentRequested reports whether any user message asks for a document.
func documentRequested(messages []ai.Message) bool {
	for _, msg := range messages {
		if msg.Role == ai.RoleUser && containsAny(strings.ToLower(msg.Content), documentRequestTerms) {
			return true
		}
	}
	return false
}

// informationGathering reports whether a prior assistant message already
// asked the user for document details.
func informationGathering(messages []ai.Message) bool {
	for _, msg := range messages {
		if msg.Role == ai.RoleAssistant && containsAny(strings.ToLower(msg.Content), gatheringPhrases) {
			return true
		}
	}
	return false
}

func countRole(messages []ai.Message, role ai.Role) int {
	n := 0
	for _, msg := range messages {
		if msg.Role == role {
			n++
		}
	}
	return n
}
