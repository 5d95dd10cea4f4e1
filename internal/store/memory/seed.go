package memory

import (
	"encoding/json"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"

	"myyeargroup/backend/internal/models"
)

// NewSeeded returns a store populated with the demo data set: a platform
// admin, five members across three yeargroups, and a small spread of posts,
// friendships, listings, events and notifications to make every surface of
// the app non-empty.
func NewSeeded() *Store {
	s := New()
	seed(s)
	return s
}

func hash(password string) string {
	// MinCost: seed passwords are demo fixtures, not secrets.
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return string(h)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func payload(v any) datatypes.JSON {
	b, _ := json.Marshal(v)
	return datatypes.JSON(b)
}

func ptr[T any](v T) *T { return &v }

func seed(s *Store) {
	approvedBy := "admin1"

	s.users = []models.User{
		{
			ID: "admin1", Email: "admin@myyeargroup.com", PasswordHash: hash("admin123"),
			Role: models.RoleSuperadmin, Status: models.StatusApproved,
			FirstName: "Admin", LastName: "User", GMCNumber: "GMC0000000",
			MedicalSchoolID: "1", GraduationYear: 2010, Specialty: "Administration",
			CurrentPosition: "Platform Administrator", Location: "London",
			Bio:             "Managing the MyYearGroup platform",
			ProfileImageURL: "https://api.dicebear.com/7.x/avataaars/svg?seed=Admin",
			EmailVerified:   true, CreatedAt: date(2023, 1, 1), LastLogin: date(2024, 1, 20),
		},
		{
			ID: "u1", Email: "sarah.johnson@nhs.uk", PasswordHash: hash("password123"),
			Role: models.RoleMember, Status: models.StatusApproved,
			FirstName: "Sarah", LastName: "Johnson", GMCNumber: "GMC7891234",
			MedicalSchoolID: "1", GraduationYear: 2018, Specialty: "Cardiology",
			CurrentPosition: "Consultant Cardiologist", Location: "London",
			Bio:             "Consultant Cardiologist at St. Bartholomew's Hospital. Interested in interventional cardiology and research.",
			ProfileImageURL: "https://api.dicebear.com/7.x/avataaars/svg?seed=Sarah",
			EmailVerified:   true, CreatedAt: date(2023, 1, 15), LastLogin: date(2024, 1, 20),
			ApprovedAt: ptr(date(2023, 1, 16)), ApprovedBy: &approvedBy,
		},
		{
			ID: "u2", Email: "michael.chen@nhs.uk", PasswordHash: hash("password123"),
			Role: models.RoleMember, Status: models.StatusApproved,
			FirstName: "Michael", LastName: "Chen", GMCNumber: "GMC7891235",
			MedicalSchoolID: "2", GraduationYear: 2018, Specialty: "Surgery",
			CurrentPosition: "Orthopaedic Surgeon", Location: "Cambridge",
			Bio:             "Orthopaedic surgeon specializing in sports medicine and trauma.",
			ProfileImageURL: "https://api.dicebear.com/7.x/avataaars/svg?seed=Michael",
			EmailVerified:   true, CreatedAt: date(2023, 2, 10), LastLogin: date(2024, 1, 19),
			ApprovedAt: ptr(date(2023, 2, 11)), ApprovedBy: &approvedBy,
		},
		{
			ID: "u3", Email: "emily.rodriguez@nhs.uk", PasswordHash: hash("password123"),
			Role: models.RoleMember, Status: models.StatusApproved,
			FirstName: "Emily", LastName: "Rodriguez", GMCNumber: "GMC7891236",
			MedicalSchoolID: "3", GraduationYear: 2019, Specialty: "Paediatrics",
			CurrentPosition: "Paediatric Consultant", Location: "London",
			Bio:             "Paediatric consultant with interests in neonatology and child development.",
			ProfileImageURL: "https://api.dicebear.com/7.x/avataaars/svg?seed=Emily",
			EmailVerified:   true, CreatedAt: date(2023, 3, 5), LastLogin: date(2024, 1, 18),
			ApprovedAt: ptr(date(2023, 3, 6)), ApprovedBy: &approvedBy,
		},
		{
			ID: "u4", Email: "james.wilson@nhs.uk", PasswordHash: hash("password123"),
			Role: models.RoleMember, Status: models.StatusPending,
			FirstName: "James", LastName: "Wilson", GMCNumber: "GMC7891237",
			MedicalSchoolID: "4", GraduationYear: 2017, Specialty: "Emergency Medicine",
			CurrentPosition: "A&E Consultant", Location: "Manchester",
			Bio:             "A&E consultant passionate about trauma care and medical education.",
			ProfileImageURL: "https://api.dicebear.com/7.x/avataaars/svg?seed=James",
			EmailVerified:   true, CreatedAt: date(2024, 1, 18), LastLogin: date(2024, 1, 18),
		},
		{
			ID: "u5", Email: "priya.patel@nhs.uk", PasswordHash: hash("password123"),
			Role: models.RoleMember, Status: models.StatusApproved,
			FirstName: "Priya", LastName: "Patel", GMCNumber: "GMC7891238",
			MedicalSchoolID: "1", GraduationYear: 2018, Specialty: "Psychiatry",
			CurrentPosition: "Consultant Psychiatrist", Location: "Oxford",
			Bio:             "Specializing in adult psychiatry with focus on mood disorders.",
			ProfileImageURL: "https://api.dicebear.com/7.x/avataaars/svg?seed=Priya",
			EmailVerified:   true, CreatedAt: date(2023, 4, 20), LastLogin: date(2024, 1, 17),
			ApprovedAt: ptr(date(2023, 4, 21)), ApprovedBy: &approvedBy,
		},
	}

	s.yeargroups = []models.Yeargroup{
		{
			ID: "yg1", MedicalSchoolID: "1", GraduationYear: 2018,
			Name:        "Oxford Class of 2018",
			Description: "Connect with fellow Oxford medical graduates from 2018",
			MemberCount: 45, CreatedAt: date(2023, 1, 1),
		},
		{
			ID: "yg2", MedicalSchoolID: "2", GraduationYear: 2018,
			Name:        "Cambridge Class of 2018",
			Description: "Cambridge medical graduates of 2018",
			MemberCount: 38, CreatedAt: date(2023, 1, 1),
		},
		{
			ID: "yg3", MedicalSchoolID: "3", GraduationYear: 2019,
			Name:        "Imperial Class of 2019",
			Description: "Imperial College London medical graduates of 2019",
			MemberCount: 52, CreatedAt: date(2023, 1, 1),
		},
	}

	s.posts = []models.Post{
		{
			ID: "p1", UserID: "u1", YeargroupID: "yg1",
			Content:    "Exciting news! Just published a paper on minimally invasive cardiac procedures in the BMJ. Great collaboration with the team at Oxford. Looking forward to discussing this at our next reunion!",
			Visibility: models.VisibilityYeargroup,
			LikesCount: 3, CommentsCount: 2, LikedBy: []string{"u2", "u3", "u5"},
			Cursor:    1,
			CreatedAt: at(2024, 1, 15, 9, 0), UpdatedAt: at(2024, 1, 15, 9, 0),
		},
		{
			ID: "p2", UserID: "u3", YeargroupID: "yg3",
			Content:    "Wonderful experience at the Paediatric Conference in Edinburgh. Met so many inspiring colleagues. The session on childhood obesity was particularly insightful. Anyone else attending the London conference next month?",
			Visibility: models.VisibilityFriends,
			LikesCount: 2, CommentsCount: 0, LikedBy: []string{"u1", "u2"},
			Cursor:    2,
			CreatedAt: at(2024, 1, 10, 14, 20), UpdatedAt: at(2024, 1, 10, 14, 20),
		},
		{
			ID: "p3", UserID: "u2", YeargroupID: "yg2",
			Content:    "Just completed my first marathon! Training while maintaining hospital schedules was challenging but worth it. Thanks to everyone who supported the charity fundraiser - we raised £5,000 for medical equipment!",
			Visibility: models.VisibilityYeargroup,
			LikesCount: 3, CommentsCount: 1, LikedBy: []string{"u1", "u3", "u5"},
			Cursor:    3,
			CreatedAt: at(2024, 1, 8, 16, 45), UpdatedAt: at(2024, 1, 8, 16, 45),
		},
	}
	s.cursor = 3

	s.comments = []models.Comment{
		{ID: "c1", PostID: "p1", UserID: "u2", Content: "Congratulations Sarah! Can't wait to read it. This is exactly the kind of innovation we need.", CreatedAt: at(2024, 1, 15, 10, 30)},
		{ID: "c2", PostID: "p1", UserID: "u5", Content: "Amazing work! Would love to discuss potential applications in psychiatric settings.", CreatedAt: at(2024, 1, 15, 11, 15)},
		{ID: "c3", PostID: "p3", UserID: "u1", Content: "Incredible achievement Michael! Which charity did you run for?", CreatedAt: at(2024, 1, 8, 17, 30)},
	}

	s.friendships = []models.Friendship{
		{ID: "f1", UserID: "u1", FriendID: "u2", Status: models.FriendshipAccepted, RequestedAt: date(2023, 2, 1), AcceptedAt: ptr(date(2023, 2, 2))},
		{ID: "f2", UserID: "u1", FriendID: "u3", Status: models.FriendshipAccepted, RequestedAt: date(2023, 3, 10), AcceptedAt: ptr(date(2023, 3, 11))},
		{ID: "f3", UserID: "u2", FriendID: "u5", Status: models.FriendshipPending, RequestedAt: date(2024, 1, 15)},
	}

	s.jobs = []models.Job{
		{
			ID: "j1", UserID: "u1", Title: "Consultant Cardiologist",
			Hospital: "Royal London Hospital", Department: "Cardiology", Location: "London",
			JobType:      models.JobTypePermanent,
			Description:  "We are seeking a dynamic Consultant Cardiologist to join our established team.",
			Requirements: "CCT in Cardiology, GMC registration, excellent communication skills",
			SalaryRange:  "£88,364 - £119,133",
			ApplicationDeadline: date(2024, 2, 28), ContactEmail: "recruitment@royallondon.nhs.uk",
			IsActive: true, ViewsCount: 156, CreatedAt: date(2024, 1, 8), UpdatedAt: date(2024, 1, 8),
		},
		{
			ID: "j2", UserID: "u2", Title: "ST6 Orthopaedic Surgery",
			Hospital: "Addenbrooke's Hospital", Department: "Orthopaedics", Location: "Cambridge",
			JobType:      models.JobTypeFellowship,
			Description:  "Exciting opportunity for an ST6 trainee in Orthopaedic Surgery.",
			Requirements: "MRCS, ST5 completion, interest in sports medicine",
			SalaryRange:  "£51,017 - £58,398",
			ApplicationDeadline: date(2024, 3, 15), ContactEmail: "ortho.training@addenbrookes.nhs.uk",
			IsActive: true, ViewsCount: 89, CreatedAt: date(2024, 1, 5), UpdatedAt: date(2024, 1, 5),
		},
		{
			ID: "j3", UserID: "u3", Title: "Locum Paediatric Consultant",
			Hospital: "Great Ormond Street Hospital", Department: "Paediatrics", Location: "London",
			JobType:      models.JobTypeLocum,
			Description:  "3-month locum position covering maternity leave.",
			Requirements: "CCT in Paediatrics, experience in complex cases",
			SalaryRange:  "£500-650 per day",
			ApplicationDeadline: date(2024, 2, 1), ContactEmail: "locums@gosh.nhs.uk",
			IsActive: true, ViewsCount: 234, CreatedAt: date(2024, 1, 12), UpdatedAt: date(2024, 1, 12),
		},
	}

	s.properties = []models.Property{
		{
			ID: "prop1", UserID: "u1", Title: "Beautiful 2-bed flat in Canary Wharf",
			Type: models.PropertyTypeRent, Location: "London, E14",
			Description: "Modern apartment on the 15th floor with stunning river views. Close to major hospitals.",
			Bedrooms:    2, Bathrooms: 2, Price: ptr(2800),
			AvailableFrom: date(2024, 2, 1), AvailableTo: date(2025, 2, 1),
			Amenities:     []string{"Gym", "Concierge", "Parking", "Balcony", "Dishwasher"},
			IsActive:      true, ViewsCount: 342, CreatedAt: date(2024, 1, 12), UpdatedAt: date(2024, 1, 12),
		},
		{
			ID: "prop2", UserID: "u3", Title: "House swap: Edinburgh to London",
			Type: models.PropertyTypeSwap, Location: "Edinburgh, EH3",
			Description: "Beautiful Victorian 3-bed house in New Town Edinburgh. Looking to swap for similar in London for 6-month rotation.",
			Bedrooms:    3, Bathrooms: 2,
			AvailableFrom:   date(2024, 3, 1), AvailableTo: date(2024, 9, 1),
			Amenities:       []string{"Garden", "Parking", "Study", "Storage"},
			SwapPreferences: "Looking for 2-3 bedroom property in London zones 1-3",
			IsActive:        true, ViewsCount: 178, CreatedAt: date(2024, 1, 8), UpdatedAt: date(2024, 1, 8),
		},
	}

	s.events = []models.Event{
		{
			ID: "e1", YeargroupID: "yg1", OrganizerID: "u1",
			Title:       "Oxford Class of 2018 - 5 Year Reunion",
			Description: "Join us for dinner and drinks to celebrate 5 years since graduation!",
			EventDate:   at(2024, 3, 15, 19, 0), Location: "The Randolph Hotel, Oxford",
			MaxAttendees: 60, RSVPDeadline: date(2024, 3, 1),
			Attendees: []models.EventAttendee{
				{UserID: "u1", Status: models.RSVPAttending, RespondedAt: date(2024, 1, 10)},
				{UserID: "u5", Status: models.RSVPAttending, RespondedAt: date(2024, 1, 11)},
				{UserID: "u2", Status: models.RSVPMaybe, RespondedAt: date(2024, 1, 12)},
			},
			CreatedAt: date(2024, 1, 5),
		},
		{
			ID: "e2", YeargroupID: "yg2", OrganizerID: "u2",
			Title:       "Cambridge Medical Alumni Conference",
			Description: "Annual conference featuring talks on latest medical innovations and networking opportunities.",
			EventDate:   at(2024, 4, 20, 9, 0), Location: "Cambridge University Medical School",
			MaxAttendees: 150, RSVPDeadline: date(2024, 4, 10),
			Attendees: []models.EventAttendee{
				{UserID: "u2", Status: models.RSVPAttending, RespondedAt: date(2024, 1, 8)},
			},
			CreatedAt: date(2024, 1, 3),
		},
	}

	s.notifications = []models.Notification{
		{
			ID: "n1", UserID: "u1", Type: models.NotificationFriendRequest,
			Title:   "New Friend Request",
			Message: "Dr. James Wilson wants to connect with you",
			Data:    payload(map[string]string{"from_user_id": "u4"}),
			IsRead:  false, CreatedAt: at(2024, 1, 18, 10, 0),
		},
		{
			ID: "n2", UserID: "u1", Type: models.NotificationPostLike,
			Title:   "Your post was liked",
			Message: "Dr. Priya Patel liked your post about cardiac procedures",
			Data:    payload(map[string]string{"post_id": "p1", "liked_by": "u5"}),
			IsRead:  true, CreatedAt: at(2024, 1, 15, 11, 0),
		},
		{
			ID: "n3", UserID: "admin1", Type: models.NotificationAdminApproval,
			Title:   "New Member Pending Approval",
			Message: "Dr. James Wilson (GMC7891237) has registered and needs approval",
			Data:    payload(map[string]string{"user_id": "u4"}),
			IsRead:  false, CreatedAt: at(2024, 1, 18, 9, 0),
		},
	}
}
