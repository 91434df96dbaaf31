package skillgap

// requiredSkills is the canonical career/tier requirement table. Order within a
// cell is meaningful: the roadmap splits missing skills positionally, so earlier
// entries land in the short-term phase.
var requiredSkills = map[string]map[Tier][]string{
	"data-scientist": {
		TierBeginner:     {"python", "statistics", "data analysis", "excel", "sql", "mathematics"},
		TierIntermediate: {"machine learning", "pandas", "numpy", "scikit-learn", "data visualization", "jupyter"},
		TierAdvanced:     {"deep learning", "tensorflow", "pytorch", "mlops", "big data", "spark"},
	},
	"software-developer": {
		TierBeginner:     {"programming basics", "html", "css", "javascript", "git", "problem solving"},
		TierIntermediate: {"react", "node.js", "python", "java", "databases", "apis"},
		TierAdvanced:     {"system design", "microservices", "cloud computing", "devops", "testing", "architecture"},
	},
	"product-manager": {
		TierBeginner:     {"communication", "project management", "market research", "user research", "analytics"},
		TierIntermediate: {"agile", "scrum", "product strategy", "data analysis", "stakeholder management"},
		TierAdvanced:     {"product vision", "go-to-market strategy", "team leadership", "business strategy", "metrics"},
	},
	"cybersecurity-analyst": {
		TierBeginner:     {"networking basics", "operating systems", "security fundamentals", "incident response"},
		TierIntermediate: {"penetration testing", "vulnerability assessment", "security tools", "threat intelligence"},
		TierAdvanced:     {"security architecture", "forensics", "compliance", "risk management", "security operations"},
	},
	"ai-engineer": {
		TierBeginner:     {"python", "mathematics", "statistics", "machine learning basics", "data structures"},
		TierIntermediate: {"deep learning", "neural networks", "tensorflow", "pytorch", "nlp", "computer vision"},
		TierAdvanced:     {"mlops", "model deployment", "ai ethics", "research", "optimization", "distributed systems"},
	},
	"devops-engineer": {
		TierBeginner:     {"linux", "bash scripting", "git", "networking", "cloud basics"},
		TierIntermediate: {"docker", "kubernetes", "ci/cd", "aws", "monitoring", "automation"},
		TierAdvanced:     {"infrastructure as code", "microservices", "security", "scaling", "disaster recovery"},
	},
	"ui-ux-designer": {
		TierBeginner:     {"design principles", "user research", "wireframing", "prototyping", "visual design"},
		TierIntermediate: {"figma", "sketch", "user testing", "information architecture", "interaction design"},
		TierAdvanced:     {"design systems", "accessibility", "design leadership", "research methods", "strategy"},
	},
	"business-analyst": {
		TierBeginner:     {"requirements gathering", "documentation", "stakeholder communication", "process analysis"},
		TierIntermediate: {"data analysis", "sql", "business process modeling", "change management", "agile"},
		TierAdvanced:     {"strategic analysis", "business intelligence", "data governance", "enterprise architecture"},
	},
	"cloud-architect": {
		TierBeginner:     {"cloud fundamentals", "networking", "security basics", "virtualization"},
		TierIntermediate: {"aws", "azure", "gcp", "containerization", "microservices", "monitoring"},
		TierAdvanced:     {"multi-cloud", "serverless", "edge computing", "disaster recovery", "cost optimization"},
	},
	"data-engineer": {
		TierBeginner:     {"sql", "python", "data modeling", "etl basics", "databases"},
		TierIntermediate: {"apache spark", "hadoop", "airflow", "data warehousing", "streaming"},
		TierAdvanced:     {"data architecture", "mlops", "real-time systems", "data governance", "scaling"},
	},
}

var certifications = map[string][]Certification{
	"data-scientist": {
		{Name: "Google Data Analytics Professional Certificate", Provider: "Coursera", Price: "Free", Description: "Comprehensive data analysis and visualization skills"},
		{Name: "IBM Data Science Professional Certificate", Provider: "Coursera", Price: "Free", Description: "Python, SQL, and machine learning fundamentals"},
		{Name: "Microsoft Certified: Azure Data Scientist Associate", Provider: "Microsoft", Price: "$165", Description: "Advanced ML and AI on Azure platform"},
	},
	"software-developer": {
		{Name: "Meta Front-End Development Professional Certificate", Provider: "Coursera", Price: "Free", Description: "React, JavaScript, and modern web development"},
		{Name: "AWS Certified Developer Associate", Provider: "AWS", Price: "$150", Description: "Cloud development and deployment"},
		{Name: "Google IT Automation with Python", Provider: "Coursera", Price: "Free", Description: "Python programming and automation"},
	},
	"product-manager": {
		{Name: "Google Project Management Professional Certificate", Provider: "Coursera", Price: "Free", Description: "Project management fundamentals and tools"},
		{Name: "Certified Scrum Product Owner (CSPO)", Provider: "Scrum Alliance", Price: "$395", Description: "Agile product management certification"},
		{Name: "Digital Product Management", Provider: "Coursera", Price: "Free", Description: "Modern product management practices"},
	},
	"cybersecurity-analyst": {
		{Name: "CompTIA Security+", Provider: "CompTIA", Price: "$370", Description: "Entry-level cybersecurity certification"},
		{Name: "Certified Ethical Hacker (CEH)", Provider: "EC-Council", Price: "$1,199", Description: "Penetration testing and ethical hacking"},
		{Name: "CISSP", Provider: "ISC²", Price: "$749", Description: "Advanced cybersecurity management"},
	},
	"ai-engineer": {
		{Name: "Deep Learning Specialization", Provider: "Coursera", Price: "Free", Description: "Neural networks and deep learning by Andrew Ng"},
		{Name: "TensorFlow Developer Certificate", Provider: "Google", Price: "$100", Description: "TensorFlow and ML model development"},
		{Name: "IBM AI Engineering Professional Certificate", Provider: "Coursera", Price: "Free", Description: "Machine learning and AI engineering"},
	},
}

// fallbackCertification is returned for careers missing from the catalog.
// Consumers rely on it being non-empty and on these exact values.
var fallbackCertification = Certification{
	Name:        "General Professional Development",
	Provider:    "Various",
	Price:       "Free-$500",
	Relevance:   "High",
	Description: "Focus on building relevant skills for your target career",
}
