package coursebuilder

type Option func(*FactoryParams)

func WithSubject(subject string) Option {
	return func(p *FactoryParams) {
		p.Subject = subject
	}
}

func WithCourseNumber(courseNumber string) Option {
	return func(p *FactoryParams) {
		p.CourseNumber = courseNumber
	}
}

func WithDescription(description string) Option {
	return func(p *FactoryParams) {
		p.Description = description
	}
}
