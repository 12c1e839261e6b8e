package seeds

import (
	"time"

	"gorm.io/datatypes"

	"github.com/campusly/campusly-data/models"
)

func strPtr(s string) *string { return &s }

func sampleAnnouncements() []*models.Announcement {
	return []*models.Announcement{
		{
			Title:    "GBC Students Win 3rd Place at Toronto ASCM Competition",
			Message:  "A team of George Brown College students earned a strong third-place finish at the Toronto ASCM Supply Chain Case Competition.",
			Link:     "https://www.georgebrown.ca/news/2025/george-brown-students-secure-third-place-at-the-toronto-ascm-case-competition",
			IsSeeded: true,
		},
		{
			Title:    "Future Skilled Trades Leaders Arrive for BOLT Day of Discovery",
			Message:  "George Brown College welcomed future skilled trades leaders as part of the BOLT Foundation's Day of Discovery event.",
			Link:     "https://www.georgebrown.ca/news/2025/george-brown-welcomes-future-skilled-trades-leaders-for-bolt-day-of-discovery",
			IsSeeded: true,
		},
		{
			Title:    "Leadership & Reconciliation: Dr. Siyabulela Mandela Visits GBC",
			Message:  "Dr. Siyabulela Mandela shared powerful lessons on leadership, justice, and reconciliation during his visit to campus.",
			Link:     "https://www.georgebrown.ca/news/2025/dr-siyabulela-mandela-brings-lessons-in-leadership-and-reconciliation-to-george-brown",
			IsSeeded: true,
		},
		{
			Title:    "Toronto Blockchain Community Launches New Scholarship",
			Message:  "George Brown College celebrates the launch of a new Blockchain Community Scholarship supporting students in technology programs.",
			Link:     "https://www.georgebrown.ca/news/2025/toronto-blockchain-community-scholarship-launches-at-george-brown-college",
			IsSeeded: true,
		},
		{
			Title:    "George Brown Marks Veterans Week",
			Message:  "The GBC community reflects on service and sacrifice during Canada's annual Veterans Week.",
			Link:     "https://www.georgebrown.ca/news/2025/marking-veterans-week",
			IsSeeded: true,
		},
		{
			Title:    "Polytechnic Students Compete in Annual Gingerbread Challenge",
			Message:  "George Brown Polytechnic students showcased creativity and teamwork in the beloved yearly gingerbread competition.",
			Link:     "https://www.georgebrown.ca/news/2025/george-brown-polytechnic-students-compete-in-annual-gingerbread-competition",
			IsSeeded: true,
		},
		{
			Title:    "Treaties Recognition Week at George Brown College",
			Message:  "GBC honours Treaties Recognition Week by promoting education and awareness of Indigenous history and treaty rights.",
			Link:     "https://www.georgebrown.ca/news/2025/treaties-recognition-week",
			IsSeeded: true,
		},
	}
}

func samplePlaces() []*models.Place {
	return []*models.Place{
		{
			Name:        "Student Library",
			Campus:      "Casa Loma, toronto, canada",
			Description: "Quiet study space with computers, printers, and bookable rooms.",
			Rating:      4.8,
			Tags:        datatypes.NewJSONSlice([]string{"Study", "Quiet", "Computers"}),
			IsFeatured:  true,
			ImageURI:    strPtr("asset://places/central_library"),
		},
		{
			Name:        "Student Hub",
			Campus:      "St James, toronto, canada",
			Description: "Lounge area, study tables, coffee machines, and group work areas.",
			Rating:      4.5,
			Tags:        datatypes.NewJSONSlice([]string{"Study", "Group Work", "Social"}),
			IsFeatured:  false,
			ImageURI:    strPtr("asset://places/student_centre"),
		},
		{
			Name:        "Cafeteria",
			Campus:      "Casa Loma, toronto, canada",
			Description: "Large cafeteria with food, drinks, and plenty of seating.",
			Rating:      4.1,
			Tags:        datatypes.NewJSONSlice([]string{"Food", "Social"}),
			IsFeatured:  false,
			ImageURI:    strPtr("asset://places/campus_cafe"),
		},
	}
}

// sampleGroup pairs a study group with the announcements and tasks it is
// seeded with.
type sampleGroup struct {
	group         models.StudyGroup
	announcements []models.GroupAnnouncement
	tasks         []models.GroupTask
}

func sampleStudyGroups(now time.Time) []sampleGroup {
	nextWeek := now.AddDate(0, 0, 7)
	return []sampleGroup{
		{
			group: models.StudyGroup{
				Name:        "Mobile Dev Study Group",
				Description: "Weekly sessions working through the mobile application development labs.",
			},
			announcements: []models.GroupAnnouncement{
				{Title: "Welcome!", Body: "Introduce yourself and tell us what you want to get out of the group.", Pinned: true},
				{Title: "Lab 4 walkthrough", Body: "We meet Thursday at 6pm in room C312 to go over lab 4 together."},
			},
			tasks: []models.GroupTask{
				{Title: "Finish navigation exercise", Description: "Complete the multi-screen navigation exercise before Thursday.", Labels: datatypes.NewJSONSlice([]string{"lab", "homework"}), DueAt: &nextWeek},
				{Title: "Review persistence slides", Description: "Skim the local storage lecture slides.", Labels: datatypes.NewJSONSlice([]string{"reading"})},
			},
		},
		{
			group: models.StudyGroup{
				Name:        "Math Help Circle",
				Description: "Drop-in problem solving for calculus and linear algebra.",
			},
			announcements: []models.GroupAnnouncement{
				{Title: "Midterm prep", Body: "Bring past midterms on Monday, we will work through them together.", Pinned: true},
				{Title: "Room change", Body: "We moved from B210 to the library group room on the 3rd floor."},
			},
			tasks: []models.GroupTask{
				{Title: "Practice set 6", Description: "Integration by parts, questions 1-12.", Labels: datatypes.NewJSONSlice([]string{"practice"}), DueAt: &nextWeek},
				{Title: "Share solution notes", Description: "Upload last week's worked solutions for the group."},
			},
		},
		{
			group: models.StudyGroup{
				Name:        "Career Prep Crew",
				Description: "Resume reviews, mock interviews, and co-op application support.",
			},
			announcements: []models.GroupAnnouncement{
				{Title: "Mock interviews", Body: "Sign up for a 20 minute mock interview slot this Friday.", Pinned: true},
				{Title: "Career fair recap", Body: "Notes and recruiter contacts from the fall career fair are in the shared folder."},
			},
			tasks: []models.GroupTask{
				{Title: "Update resume", Description: "Apply the feedback from last session and re-share.", Labels: datatypes.NewJSONSlice([]string{"co-op"}), DueAt: &nextWeek},
				{Title: "Draft cover letter", Description: "One page, targeted at the winter co-op postings."},
			},
		},
	}
}
