package template

// Consolidated is the built-in MAP template, keyed by stage code. U6 has a
// stage definition for labeling but no default activities.
var Consolidated = map[StageCode]StageTemplate{
	StageU2: {
		Name:        "Uncover",
		Description: "Initial discovery and scoping",
		Activities: []TemplateActivity{
			{
				Outcome:   "Confirm U1 Exit Criteria Met",
				Questions: "Is this a valid use case that is ready to enter U2? Should we push this back to U1 or de-prioritise?",
				Owner:     "SA/SA Manager",
			},
			{
				Outcome:   "Build and share this plan",
				Questions: "How will you communicate the plan to all parties and ensure continous agreement?",
				Owner:     "SA",
			},
			{
				Outcome:   "Confirm Business Strategy Alignment",
				Questions: "How does use case align with the customer's strategy and objectives?",
				Owner:     "AE",
			},
			{
				Outcome:   "Confirm budget and sign off process",
				Questions: "Who will sign off the additional consumption and implementation costs?",
				Owner:     "AE",
			},
			{
				Outcome:   "Identify & develop a champion",
				Questions: "Do we have a true Champion who can sell internally? What's their influence level?",
				Owner:     "AE/SA",
			},
			{
				Outcome:   "Confirm and document business case",
				Questions: "What's the measurable business value (ROI, efficiency, risk)? Is there executive-level urgency?",
				Owner:     "AE",
			},
			{
				Outcome:   "Discover and document as is architecture",
				Questions: "What is the current state? What are its challenges or limitations?",
				Owner:     "SA",
			},
			{
				Outcome:   "Document and validate to be architecture",
				Questions: "What will the solution look like? How feasible is it?",
				Owner:     "SA",
			},
			{
				Outcome:   "Perform initial sizing",
				Questions: "How much data? How many users? How complex is the workload? What mix of workload types is it?",
				Owner:     "SA",
			},
			{
				Outcome:     "Identify possible help needed from SSA, Product or third parties",
				Questions:   "Will we be able to access the expertise when we need it in later stages?",
				Owner:       "SA",
				Conditional: CondSSA,
			},
			{
				Outcome:   "Identify technical/product blockers and dependencies",
				Questions: "What is likely to slow things down? How can we mitigate this?",
				Owner:     "SA",
			},
			{
				Outcome:   "Agree current view of onboarding and live dates",
				Questions: "Is the customer bought into these dates? How would you assess their sense of urgency and priority?",
				Owner:     "AE/SA",
			},
			{
				Outcome:   "Agree a cadence with the customer for ongoing review and tracking",
				Questions: "How often will you check in to ensure all parties are on track? Will this be part of a wider account cadence or does it merit a separate activity?",
				Owner:     "AE/SA",
			},
			{
				Outcome:   "Identify possible implementation strategies and participants",
				Questions: "Will this be delivered by PS, Partner, Customer?",
				Owner:     "AE/SA",
			},
			{
				Outcome:     "Identify and agree evaluation strategy",
				Questions:   "What will happen in U3? Can we use an alternative to a POC?",
				Owner:       "SA",
				Conditional: CondPOC,
			},
			{
				Outcome:   "Confirm U2 Exit Criteria Met and move to U3",
				Questions: "Are you ready to enter U3?",
				Owner:     "AE/SA/SA Manager",
			},
		},
	},
	StageU3: {
		Name:        "Understand",
		Description: "Requirements gathering and MVP planning",
		Activities: []TemplateActivity{
			{
				Outcome:     "Define Evaluation Plan & Success Criteria",
				Questions:   "What are the agreed success metrics? What will trigger a go/no-go decision? Will there be a POC?",
				Owner:       "SA/AE",
				Conditional: CondPOC,
			},
			{
				Outcome:     "Document POC (if POC Needed)",
				Questions:   "Does the POC document include success criteria, a plan that shows who is responsible for what and target timescales",
				Owner:       "SA",
				Conditional: CondPOC,
			},
			{
				Outcome:   "Document alternative approach if no POC needed",
				Questions: "Do all parties understand and agree to the alternative approach and the success criteria?",
				Owner:     "SA",
			},
			{
				Outcome:   "Evaluation Milestones Aligned",
				Questions: "What are the exact steps required to hit success criteria? What could accelerate the timeline?",
				Owner:     "SA/SA Manager/AE",
			},
			{
				Outcome:   "Recheck product blockers and sign up for previews where needed",
				Questions: "How will you ensure that the customer has access to all the required functionality?",
				Owner:     "SA",
			},
			{
				Outcome:   "Revalidate sizing based on evaluation",
				Questions: "What has the evaluation process shown that will impact our assumptions about sizing? What are the cost implications?",
				Owner:     "SA",
			},
			{
				Outcome:   "Identify additional risks found in evaluation and mitigation strategies",
				Questions: "Has the POC or other evaluation approach brought any new technical risks to light?",
				Owner:     "SA",
			},
			{
				Outcome:   "Learning needs assessment",
				Questions: "What additional skills and knowledge does the customer need to ensure success?",
				Owner:     "AE/SA",
			},
			{
				Outcome:   "Validate Exec Alignment",
				Questions: "Who is the exec decision maker? What's the strength of the relationship? (Promoter/Neutral/Detractor)",
				Owner:     "AE/SA",
			},
			{
				Outcome:   "Confirm Post-Eval Path",
				Questions: "If successful, what will the customer do next? Is onboarding resourced and approved? Are we still on track to meet our target dates?",
				Owner:     "AE/SA",
			},
			{
				Outcome:   "Technical Evaluation Complete",
				Questions: "Were success criteria met? What's blocking a decision or deployment?",
				Owner:     "SA",
			},
			{
				Outcome:   "Engage all parties",
				Questions: "Are all those who will be involved in onboarding the use case engaged?",
				Owner:     "AE/SA",
			},
			{
				Outcome:   "This Mutual Action Plan is shared and agreed",
				Questions: "Does the customer agree that the evaluation is complete and understand the high level sequence of events outlined in this plan?",
				Owner:     "AE/SA",
			},
			{
				Outcome:   "Confirm U3 Exit Criteria Met and move to U4 - Technical Win",
				Questions: "Is this a quality technical win that has a clear path through U4 to U5? What could go wrong or slow things down?",
				Owner:     "AE/SA/SA Manager",
			},
		},
	},
	StageU4: {
		Name:        "Pilot",
		Description: "Pilot implementation and testing",
		Activities: []TemplateActivity{
			{
				Outcome:   "Confirm Eval Exit Criteria Were Met",
				Questions: "Have success metrics been validated and signed off? Who confirmed success on the customer side?",
				Owner:     "AE",
			},
			{
				Outcome:   "Confirm Executive Go Decision",
				Questions: "Is the economic buyer aligned and committing to proceed? What's the signed path forward?",
				Owner:     "AE",
			},
			{
				Outcome:   "Workspace & Project Provisioning",
				Questions: "Have workspaces been provisioned? Is the technical deployment path (e.g. DSA vs. self-serve) locked in?",
				Owner:     "AE/SA/DSA",
			},
			{
				Outcome:   "Delivery Planning: Who, What, When",
				Questions: "Who is delivering (DSA/partner)? What are the timelines, and who owns delivery internally?",
				Owner:     "AE/Delivery Team",
			},
			{
				Outcome:   "Final Delivery Logistics Sign-Off",
				Questions: "Have all operational elements been reviewed — data access, PS/CS handoff, success tracking?",
				Owner:     "AE/PS/SA/DSA",
			},
			{
				Outcome:   "Customer Communication on Kickoff",
				Questions: "Is the customer's team briefed on onboarding plan, success milestones, and delivery roles?",
				Owner:     "AE",
			},
		},
	},
	StageU5: {
		Name:        "Scale",
		Description: "Production deployment and scaling",
		Activities: []TemplateActivity{
			{
				Outcome:   "Onboarding Kickoff Completed",
				Questions: "Has onboarding occurred with technical leads, project owners, and exec sponsors aligned?",
				Owner:     "Delivery Team",
			},
			{
				Outcome:   "Success Plan Finalized",
				Questions: "Is the success plan tailored to the agreed use case(s) with KPIs, owners, and timelines defined?",
				Owner:     "SA/AE",
			},
			{
				Outcome:   "Workspace Operational",
				Questions: "Are required workspaces deployed with access, Unity Catalog, and governance configured?",
				Owner:     "SA",
			},
			{
				Outcome:   "Data Onboarding Complete",
				Questions: "Has the necessary data been ingested, cleaned, and cataloged for the target use case?",
				Owner:     "SA",
			},
			{
				Outcome:   "Use Case Build Phase",
				Questions: "Are ETL pipelines, SQL queries, dashboards, or ML models being built against real data?",
				Owner:     "Customer/Partner",
			},
			{
				Outcome:   "Milestone Review: First Value Delivered",
				Questions: "Has the customer run production-like workflows (e.g., first pipeline, query, or model run)?",
				Owner:     "SA",
			},
			{
				Outcome:   "Enablement & Handoff to Users",
				Questions: "Are end users enabled on tools like DBSQL, notebooks, dashboards, or ML interfaces?",
				Owner:     "SA",
			},
			{
				Outcome:   "User Onboarding Plan",
				Questions: "Is there a big bang cutover of users or staged user onboarding? How many in each stage? Are the first tranche of users enabled/trained on Databricks?",
				Owner:     "SA/AE",
			},
			{
				Outcome:   "Value Confirmation Milestone",
				Questions: "Has the business sponsor confirmed the use case delivered expected results or insights?",
				Owner:     "AE",
			},
			{
				Outcome:   "Final Project Wrap-Up",
				Questions: "Is there a documented outcomes review, with a clear roadmap for next use cases or expansion?",
				Owner:     "AE/SA",
			},
			{
				Outcome:   "Transition to CS/Scale Team",
				Questions: "Has ownership formally shifted to the CS/Scale team with context and future growth plan?",
				Owner:     "AE",
			},
		},
	},
	StageU6: {
		Name:        "Expand",
		Description: "Go-live and expansion planning",
	},
}
