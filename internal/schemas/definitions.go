package schemas

// Schema definitions for the oracle's structured responses. These fail closed:
// missing or mis-typed fields reject the whole payload rather than decoding
// into zero values.

// ResumeSchema validates the resume extraction response.
const ResumeSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["personalInfo", "workExperience", "education", "skills"],
  "properties": {
    "personalInfo": {
      "type": "object",
      "required": ["name", "currentDesignation"],
      "properties": {
        "name": {"type": "string"},
        "age": {"type": ["integer", "null"]},
        "currentDesignation": {"type": "string"}
      }
    },
    "workExperience": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["role", "company", "duration", "summary"],
        "properties": {
          "role": {"type": "string"},
          "company": {"type": "string"},
          "duration": {"type": "string"},
          "summary": {"type": "string"}
        }
      }
    },
    "education": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["degree", "institution"],
        "properties": {
          "degree": {"type": "string"},
          "institution": {"type": "string"},
          "year": {"type": ["integer", "null"]}
        }
      }
    },
    "skills": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "level"],
        "properties": {
          "name": {"type": "string"},
          "level": {"type": "string", "enum": ["Beginner", "Intermediate", "Advanced", "Expert"]}
        }
      }
    }
  }
}`

// RoadmapSchema validates the roadmap generation response.
const RoadmapSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["gapAnalysis", "milestones", "softSkills", "networkingSuggestions"],
  "properties": {
    "gapAnalysis": {"type": "string"},
    "milestones": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["title", "description", "skillsToAcquire", "suggestedCourses", "capstoneProject"],
        "properties": {
          "title": {"type": "string"},
          "description": {"type": "string"},
          "skillsToAcquire": {"type": "array", "items": {"type": "string"}},
          "suggestedCourses": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["name", "link"],
              "properties": {
                "name": {"type": "string"},
                "link": {"type": "string"}
              }
            }
          },
          "capstoneProject": {
            "type": "object",
            "required": ["title", "description"],
            "properties": {
              "title": {"type": "string"},
              "description": {"type": "string"}
            }
          }
        }
      }
    },
    "softSkills": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["skill", "description"],
        "properties": {
          "skill": {"type": "string"},
          "description": {"type": "string"}
        }
      }
    },
    "networkingSuggestions": {
      "type": "object",
      "required": ["suggestion", "messageTemplate"],
      "properties": {
        "suggestion": {"type": "string"},
        "messageTemplate": {"type": "string"}
      }
    }
  }
}`

const vocalDeliveryMetricSchema = `{
      "type": "object",
      "required": ["score", "feedback"],
      "properties": {
        "score": {"type": "integer", "minimum": 0, "maximum": 10},
        "feedback": {"type": "string"}
      }
    }`

// FeedbackSchema validates the chat interview feedback response.
const FeedbackSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["overallScore", "scoreReason", "strengths", "areasForImprovement", "detailedFeedback"],
  "properties": {
    "overallScore": {"type": "integer", "minimum": 1, "maximum": 10},
    "scoreReason": {"type": "string"},
    "strengths": {"type": "array", "items": {"type": "string"}},
    "areasForImprovement": {"type": "array", "items": {"type": "string"}},
    "detailedFeedback": {"type": "string"}
  }
}`

// AudioFeedbackSchema validates the audio interview feedback response,
// which additionally carries the five-metric vocal delivery block.
const AudioFeedbackSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["overallScore", "scoreReason", "strengths", "areasForImprovement", "detailedFeedback", "vocalDelivery"],
  "properties": {
    "overallScore": {"type": "integer", "minimum": 1, "maximum": 10},
    "scoreReason": {"type": "string"},
    "strengths": {"type": "array", "items": {"type": "string"}},
    "areasForImprovement": {"type": "array", "items": {"type": "string"}},
    "detailedFeedback": {"type": "string"},
    "vocalDelivery": {
      "type": "object",
      "required": ["pace", "clarity", "confidence", "fillerWords", "energy"],
      "properties": {
        "pace": ` + vocalDeliveryMetricSchema + `,
        "clarity": ` + vocalDeliveryMetricSchema + `,
        "confidence": ` + vocalDeliveryMetricSchema + `,
        "fillerWords": ` + vocalDeliveryMetricSchema + `,
        "energy": ` + vocalDeliveryMetricSchema + `
      }
    }
  }
}`

// JobsSchema validates the job finder response.
const JobsSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["designation", "companyName"],
    "properties": {
      "designation": {"type": "string"},
      "companyName": {"type": "string"}
    }
  }
}`
