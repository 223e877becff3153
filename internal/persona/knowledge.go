package persona

import "os"

// DefaultKnowledge is the static knowledge base the assistant answers
// from. It is configuration-like data: loaded once, never mutated at
// runtime, and never influenced by user input.
const DefaultKnowledge = `
Navaneeth A D is an AI & Machine Learning Engineer specializing in Generative AI, RAG systems, backend architecture, and applied research.

Education:
- B.Tech in Computer Science and Engineering (Specialization: AI & ML), Presidency University, Bengaluru.
- Graduating in 2026.

Experience:
- Python & AI Developer Intern at Innovitegra Solutions.
- AI & ML Intern at Revino Technologies (built AI Caller system using GCP, Vertex AI, RAG with FAISS).
- Machine Learning Intern at Bharat Electronics Limited (predictive analytics and signal processing models).
- Summer Research Intern at IIT Kanpur (Generative AI, Transformers).
- President of HARVEST Club (AI & AgriTech innovation leadership).

Key Projects:
- AI Caller: RAG-based voice system with STT/TTS and Vertex AI.
- NeuroNova: AI smart learning portal with mood detection.
- Multilingual Railway System: Real-time speech recognition + neural translation + generative AI. Paper presented at ICRAI 2025. Survey published in JIMS.
- Enterprise Service Bus: Backend integration system supporting ISO 8583.
- Rotor Blade Count Prediction: ML model using vibration signal analysis.
- Heart Disease Risk Prediction: Supervised ML system using Framingham dataset.
- IoT Wearable Miner Safety Device: Published in Springer conference.
- Clustering Algorithms Research: SCITE indexed conference publication.

Certifications:
NPTEL Domain Scholar, IIT certifications, AI and ML programs.

Publications:
4 International research publications including Springer, SCITE, and ICRAI 2025.
`

// LoadKnowledge returns the knowledge base, preferring the file at path
// when one is configured. A read failure falls back to the built-in text
// rather than starting the service with an empty persona.
func LoadKnowledge(path string) string {
	if path == "" {
		return DefaultKnowledge
	}
	data, err := os.ReadFile(path)
	if err != nil || len(data) == 0 {
		return DefaultKnowledge
	}
	return string(data)
}
