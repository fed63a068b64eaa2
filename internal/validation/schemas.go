package validation

import "scoringAPI/internal/domain"

var envelopeSchema = Schema{
	Name: "MethodRequest",
	Fields: []Field{
		{Name: "account", Kind: KindString, Nullable: true},
		{Name: "login", Kind: KindString, Required: true},
		{Name: "token", Kind: KindString, Required: true, Nullable: true},
		{Name: "arguments", Kind: KindArguments, Required: true, Nullable: true},
		{Name: "method", Kind: KindString, Required: true},
	},
}

var onlineScoreSchema = Schema{
	Name: "OnlineScoreRequest",
	Fields: []Field{
		{Name: "first_name", Kind: KindString, Nullable: true},
		{Name: "last_name", Kind: KindString, Nullable: true},
		{Name: "email", Kind: KindEmail, Nullable: true},
		{Name: "phone", Kind: KindPhone, Nullable: true},
		{Name: "birthday", Kind: KindBirthDate, Nullable: true},
		{Name: "gender", Kind: KindGender, Nullable: true},
	},
	Rule: func(r *Result) bool {
		return r.Filled("phone", "email") ||
			r.Filled("first_name", "last_name") ||
			r.Filled("gender", "birthday")
	},
	RuleMessage: "at least one pair of phone/email, first_name/last_name or gender/birthday is required",
}

var clientsInterestsSchema = Schema{
	Name: "ClientsInterestsRequest",
	Fields: []Field{
		{Name: "client_ids", Kind: KindClientIDs, Required: true},
		{Name: "date", Kind: KindDate, Nullable: true},
	},
}

// ParseEnvelope проверяет внешний конверт запроса.
func ParseEnvelope(data map[string]any) (domain.MethodRequest, error) {
	r := envelopeSchema.Validate(data)
	if err := r.Err(); err != nil {
		return domain.MethodRequest{}, err
	}
	args, _ := r.Outcomes["arguments"].Value.(map[string]any)
	return domain.MethodRequest{
		Account:   r.String("account"),
		Login:     r.String("login"),
		Token:     r.String("token"),
		Method:    r.String("method"),
		Arguments: args,
	}, nil
}

// ParseScoreArguments проверяет аргументы online_score, включая правило пар.
func ParseScoreArguments(data map[string]any) (domain.ScoreArguments, error) {
	r := onlineScoreSchema.Validate(data)
	if err := r.Err(); err != nil {
		return domain.ScoreArguments{}, err
	}
	return domain.ScoreArguments{
		FirstName: r.String("first_name"),
		LastName:  r.String("last_name"),
		Email:     r.String("email"),
		Phone:     r.String("phone"),
		Birthday:  r.Time("birthday"),
		Gender:    r.Int("gender"),
	}, nil
}

// ParseInterestsArguments проверяет аргументы clients_interests.
func ParseInterestsArguments(data map[string]any) (domain.InterestsArguments, error) {
	r := clientsInterestsSchema.Validate(data)
	if err := r.Err(); err != nil {
		return domain.InterestsArguments{}, err
	}
	ids, _ := r.Outcomes["client_ids"].Value.([]int64)
	return domain.InterestsArguments{
		ClientIDs: ids,
		Date:      r.Time("date"),
	}, nil
}
