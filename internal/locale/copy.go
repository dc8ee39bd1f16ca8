// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package locale

// MockReply is one trigger phrase and its canned answer.
type MockReply struct {
	Trigger string
	Reply   string
}

// Copy is every piece of text the chat surface shows in one language.
type Copy struct {
	Language Language

	// Seed greetings. Greeting is used with a live backend, OfflineGreeting
	// with the canned keyword provider.
	Greeting        string
	OfflineGreeting string

	// Header, input and footer.
	Title        string
	Status       string
	Placeholder  string
	FooterLive   string
	FooterMock   string
	ExpandHint   string
	CollapseHint string

	// Suggestions are the pre-canned prompt chips.
	Suggestions []string

	// ProviderError is appended as an assistant message whenever the
	// backend cannot produce an answer.
	ProviderError string

	// SourcesHeading titles the citation appendix of a remote answer.
	SourcesHeading string

	// MockReplies is ordered; the first matching trigger wins.
	MockReplies  []MockReply
	MockFallback string
}

// For returns the copy table for lang, or the English table when lang is
// not supported. The returned value shares no memory with other callers.
func For(lang Language) Copy {
	var c Copy
	switch lang {
	case Portuguese:
		c = portuguese
	default:
		c = english
	}
	c.Suggestions = append([]string(nil), c.Suggestions...)
	c.MockReplies = append([]MockReply(nil), c.MockReplies...)
	return c
}

var english = Copy{
	Language: English,
	Greeting: `## Hello! 👋

I’m a **RAG chatbot** powered by information about my skills and projects.

You can ask me about:
- technical skills
- professional experience
- projects I've built
- goals and interests

Feel free to ask anything!`,
	OfflineGreeting: "Hey! I'm a virtual assistant. Ask me about my skills, projects, experience, or anything else!",

	Title:        "Chat with me",
	Status:       "Online",
	Placeholder:  "Ask me anything...",
	FooterLive:   "Connected to RAG API",
	FooterMock:   "AI backend powered by FastAPI — coming soon",
	ExpandHint:   "Fullscreen chat",
	CollapseHint: "Close fullscreen",

	Suggestions: []string{
		"What's your experience?",
		"Tell me about your projects",
		"What tech do you use?",
		"Are you available for work?",
	},

	ProviderError:  "I could not reach the RAG API.\n\nCheck if backend is running on `http://localhost:8000` and ingestion has already been executed.",
	SourcesHeading: "Sources",

	MockReplies: []MockReply{
		{
			Trigger: "what's your experience?",
			Reply:   "I've been building software for several years, focusing on full-stack web development and AI integrations. I've worked with Python, TypeScript, React, FastAPI, and various cloud platforms. I'm currently studying at UFABC and interning in tech.",
		},
		{
			Trigger: "tell me about your projects",
			Reply:   "I've built AI-powered tools, data dashboards, and automation systems. This portfolio itself is a chatbot interface that will soon be powered by a real AI backend! I'm always shipping something new.",
		},
		{
			Trigger: "what tech do you use?",
			Reply:   "My core stack is Python + TypeScript. Frontend: React, Tailwind, Framer Motion. Backend: FastAPI. For data & AI: PostgreSQL, LangChain, OpenAI APIs. I deploy with Docker on AWS.",
		},
		{
			Trigger: "are you available for work?",
			Reply:   "Yes! I'm open to freelance projects and full-time opportunities. Let's chat about what you're building.",
		},
	},
	MockFallback: "Thanks for the message! The AI backend is coming soon — powered by FastAPI and LLMs. Try one of the quick questions to learn more about me!",
}

var portuguese = Copy{
	Language: Portuguese,
	Greeting: `## Olá! 👋

Sou um **chatbot RAG** alimentado com informações sobre minhas habilidades e projetos.

Você pode me perguntar sobre:
- habilidades técnicas
- experiência profissional
- projetos que construí
- objetivos e interesses

Fique à vontade para perguntar!`,
	OfflineGreeting: "Oi! Sou um assistente virtual. Pergunte sobre minhas habilidades, projetos, experiência ou qualquer outra coisa!",

	Title:        "Converse comigo",
	Status:       "Online",
	Placeholder:  "Pergunte qualquer coisa...",
	FooterLive:   "Conectado à API RAG",
	FooterMock:   "Backend de IA com FastAPI — em breve",
	ExpandHint:   "Chat em tela cheia",
	CollapseHint: "Sair da tela cheia",

	Suggestions: []string{
		"Qual sua experiência profissional?",
		"Fale sobre seus projetos",
		"Quais tecnologias você usa?",
		"Você está disponível para trabalho?",
	},

	ProviderError:  "Não consegui acessar a API RAG.\n\nVerifique se o backend está rodando em `http://localhost:8000` e se a ingestão já foi executada.",
	SourcesHeading: "Fontes",

	MockReplies: []MockReply{
		{
			Trigger: "qual sua experiência profissional?",
			Reply:   "Desenvolvo software há alguns anos, com foco em desenvolvimento web full-stack e integrações com IA. Trabalhei com Python, TypeScript, React, FastAPI e várias plataformas de nuvem. Atualmente estudo na UFABC e faço estágio em tecnologia.",
		},
		{
			Trigger: "fale sobre seus projetos",
			Reply:   "Construí ferramentas com IA, dashboards de dados e sistemas de automação. Este portfólio é uma interface de chatbot que em breve terá um backend de IA de verdade! Estou sempre lançando algo novo.",
		},
		{
			Trigger: "quais tecnologias você usa?",
			Reply:   "Minha stack principal é Python + TypeScript. Frontend: React, Tailwind, Framer Motion. Backend: FastAPI. Dados e IA: PostgreSQL, LangChain, APIs da OpenAI. Faço deploy com Docker na AWS.",
		},
		{
			Trigger: "você está disponível para trabalho?",
			Reply:   "Sim! Estou aberto a projetos freelance e oportunidades em tempo integral. Vamos conversar sobre o que você está construindo.",
		},
	},
	MockFallback: "Obrigado pela mensagem! O backend de IA chega em breve, com FastAPI e LLMs. Experimente uma das perguntas rápidas para saber mais sobre mim!",
}
