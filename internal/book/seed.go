package book

import "github.com/shopspring/decimal"

// SampleBooks is the fixed catalog used to populate fresh databases.
func SampleBooks() []Book {
	mk := func(title, author, price string, stock int) Book {
		return Book{Title: title, Author: author, Price: decimal.RequireFromString(price), Stock: stock}
	}

	return []Book{
		mk("Clean Code", "Robert C. Martin", "39.99", 15),
		mk("The Pragmatic Programmer", "Andrew Hunt", "44.99", 10),
		mk("Design Patterns", "Gang of Four", "54.99", 8),
		mk("Introduction to Algorithms", "Thomas H. Cormen", "89.99", 5),
		mk("The Clean Coder", "Robert C. Martin", "34.99", 12),
		mk("Refactoring", "Martin Fowler", "49.99", 7),
		mk("Head First Design Patterns", "Eric Freeman", "44.99", 20),
		mk("Code Complete", "Steve McConnell", "59.99", 6),
		mk("The Mythical Man-Month", "Frederick P. Brooks Jr.", "29.99", 15),
		mk("Working Effectively with Legacy Code", "Michael Feathers", "49.99", 9),
		mk("Domain-Driven Design", "Eric Evans", "64.99", 4),
		mk("Patterns of Enterprise Application Architecture", "Martin Fowler", "54.99", 11),
	}
}

// SeedResult summarizes a Seed run.
type SeedResult struct {
	Created int
	Updated int
}

// Seed upserts the sample catalog keyed by (title, author).
func Seed(repo Repository) (SeedResult, error) {
	var res SeedResult
	for _, b := range SampleBooks() {
		_, created, err := repo.Upsert(b)
		if err != nil {
			return res, err
		}
		if created {
			res.Created++
		} else {
			res.Updated++
		}
	}
	return res, nil
}
