package ai

// MockTranscript returns the canned demo transcript used in mock mode and as
// the fallback when transcription fails.
func MockTranscript() string {
	return `Meeting Transcript - Project Kickoff Discussion

John: Good morning everyone, welcome to our Q1 project kickoff meeting. I'm John, the project manager, and I'll be leading this discussion today.

Sarah: Hi everyone, I'm Sarah from the development team. Looking forward to getting started on this new initiative.

Mike: Mike here, representing the design team. We've been working on some initial mockups that I'd like to share.

John: Perfect. Let's start with the project overview. We're building a new customer portal that will streamline our order processing system. The goal is to reduce order processing time by 50% and improve customer satisfaction scores.

Sarah: From a technical perspective, we're looking at a 12-week development cycle. We'll need to integrate with our existing ERP system and build a new API layer. I estimate we'll need at least three developers on this project.

Mike: The design team has created wireframes for the main user flows. We're focusing on a mobile-first approach since 70% of our customers access the portal from mobile devices.

John: That's great. What about the timeline? When can we realistically launch this?

Sarah: If we start development next week, we can have a beta version ready by week 8, and full launch by week 12. But we'll need to finalize the API specifications by Friday.

Mike: I can have the final design mockups ready by Wednesday. That should give the development team enough time to review before starting implementation.

John: Excellent. Let's set some action items. Sarah, can you prepare the technical specifications document by Friday?

Sarah: Yes, I'll have that ready. I'll also need to coordinate with the DevOps team about deployment infrastructure.

John: Good point. Mike, what about the design handoff?

Mike: I'll prepare the design system documentation and component library. Should be ready by Wednesday as mentioned.

John: Perfect. Let's schedule a follow-up meeting for next Tuesday to review progress. Any other questions or concerns?

Sarah: Just one thing - we should consider setting up automated testing from the beginning. It will save us time in the long run.

John: Absolutely. Add that to the technical specifications. Alright, if there are no other questions, let's wrap this up. Thanks everyone for your time.

Meeting ended at 10:30 AM.`
}

// MockSummaryResponse returns the canned demo summary as raw model output,
// the same shape the generation endpoint produces.
func MockSummaryResponse() string {
	return `{
    "summary": "Project kickoff meeting for a new customer portal initiative aimed at reducing order processing time by 50% and improving customer satisfaction.",
    "topics_discussed": [
        "Project overview and objectives",
        "Technical requirements and development timeline",
        "Design approach and mobile-first strategy",
        "Resource allocation and team coordination"
    ],
    "key_decisions": [
        "12-week development cycle approved",
        "Mobile-first design approach confirmed",
        "Beta launch scheduled for week 8",
        "Full launch targeted for week 12"
    ],
    "action_items": [
        {
            "task": "Prepare technical specifications document",
            "owner": "Sarah",
            "deadline": "Friday",
            "priority": "High"
        },
        {
            "task": "Finalize design mockups and prepare design system",
            "owner": "Mike",
            "deadline": "Wednesday",
            "priority": "High"
        },
        {
            "task": "Coordinate with DevOps team for deployment infrastructure",
            "owner": "Sarah",
            "deadline": "Next week",
            "priority": "Medium"
        },
        {
            "task": "Set up automated testing framework",
            "owner": "Sarah",
            "deadline": "Week 2",
            "priority": "Medium"
        }
    ],
    "next_steps": "Schedule follow-up meeting for next Tuesday to review progress and address any blockers."
}`
}
