package main

import (
	"context"
	"log"
	"time"

	"lifeline/internal/database"
	"lifeline/internal/domain"
	"lifeline/internal/repository"
)

func main() {
	db, err := database.Connect("lifeline.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM notifications")
	db.Exec("DELETE FROM blood_requests")
	db.Exec("DELETE FROM donations")
	db.Exec("DELETE FROM donors")
	db.Exec("DELETE FROM feedbacks")

	ctx := context.Background()
	donorRepo := repository.NewDonorRepository(db)
	donationRepo := repository.NewDonationRepository(db)
	requestRepo := repository.NewRequestRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)

	log.Println("Creating donors...")
	donors := []domain.Donor{
		{
			UID:        "seed-rahim",
			Email:      "rahim@mail.com",
			FirstName:  "Rahim",
			LastName:   "Uddin",
			Phone:      "01711111111",
			BloodGroup: "O+",
			District:   "Rajshahi",
			Division:   "Rajshahi",
		},
		{
			UID:        "seed-karim",
			Email:      "karim@mail.com",
			FirstName:  "Karim",
			LastName:   "Hossain",
			Phone:      "01722222222",
			BloodGroup: "O+",
			District:   "Rajshahi",
			Division:   "Rajshahi",
		},
		{
			UID:               "seed-salma",
			Email:             "salma@mail.com",
			FirstName:         "Salma",
			LastName:          "Akter",
			Phone:             "01733333333",
			BloodGroup:        "A+",
			District:          "Dhaka",
			Division:          "Dhaka",
			LastDonationMonth: "Jan",
			LastDonationYear:  "2024",
		},
	}
	for i := range donors {
		if err := donorRepo.Upsert(ctx, &donors[i]); err != nil {
			log.Fatal("donor seed failed:", err)
		}
	}

	log.Println("Creating donations...")
	donations := []domain.Donation{
		{
			UID:     "seed-rahim",
			DonorID: &donors[0].ID,
			Date:    time.Now().AddDate(0, 0, -121),
			Units:   1,
			Place:   "Rajshahi Medical College",
		},
		{
			UID:     "seed-karim",
			DonorID: &donors[1].ID,
			Date:    time.Now().AddDate(0, 0, -30),
			Units:   2,
			Place:   "Islami Bank Hospital",
		},
	}
	for i := range donations {
		if err := donationRepo.Create(ctx, &donations[i]); err != nil {
			log.Fatal("donation seed failed:", err)
		}
	}

	log.Println("Creating a blood request...")
	req := domain.BloodRequest{
		RequesterUID:   "seed-salma",
		RequesterName:  "Salma Akter",
		RequesterEmail: "salma@mail.com",
		RequesterPhone: "01733333333",
		BloodGroup:     "O+",
		Division:       "Rajshahi",
		District:       "Rajshahi",
		HospitalName:   "Rajshahi Medical College",
		PatientName:    "Abdul Mannan",
		Relation:       "father",
		Units:          2,
		NeededDate:     time.Now().AddDate(0, 0, 3).Format("2006-01-02"),
		Reason:         "surgery",
		Status:         domain.RequestOpen,
	}
	if err := requestRepo.Create(ctx, &req); err != nil {
		log.Fatal("request seed failed:", err)
	}

	log.Println("Creating feedback...")
	fb := domain.Feedback{
		Name:    "Karim Hossain",
		Role:    domain.FeedbackRoleDonor,
		Rating:  5,
		Message: "Found a donor for my neighbour within an hour.",
	}
	if err := feedbackRepo.Create(ctx, &fb); err != nil {
		log.Fatal("feedback seed failed:", err)
	}

	log.Println("Seed complete.")
}
