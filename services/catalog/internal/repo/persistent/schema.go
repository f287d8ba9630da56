package persistent

import "campshop/pkg/query"

// Fields a list query string may filter, sort or select on, per collection.
// Password hashes and reset tokens are never listed here.

var userSchema = query.Schema{
	"id":         {Column: "id"},
	"name":       {Column: "name"},
	"email":      {Column: "email"},
	"role":       {Column: "role"},
	"created_at": {Column: "created_at", Kind: query.Time},
}

var bootcampSchema = query.Schema{
	"id":             {Column: "id"},
	"user_id":        {Column: "user_id"},
	"name":           {Column: "name"},
	"slug":           {Column: "slug"},
	"description":    {Column: "description"},
	"website":        {Column: "website"},
	"phone":          {Column: "phone"},
	"email":          {Column: "email"},
	"address":        {Column: "address"},
	"city":           {Column: "city"},
	"state":          {Column: "state"},
	"zipcode":        {Column: "zipcode"},
	"country":        {Column: "country"},
	"average_rating": {Column: "average_rating", Kind: query.Number},
	"average_cost":   {Column: "average_cost", Kind: query.Number},
	"photo":          {Column: "photo"},
	"housing":        {Column: "housing", Kind: query.Bool},
	"job_assistance": {Column: "job_assistance", Kind: query.Bool},
	"job_guarantee":  {Column: "job_guarantee", Kind: query.Bool},
	"accept_gi":      {Column: "accept_gi", Kind: query.Bool},
	"created_at":     {Column: "created_at", Kind: query.Time},
}

var courseSchema = query.Schema{
	"id":                    {Column: "id"},
	"title":                 {Column: "title"},
	"description":           {Column: "description"},
	"weeks":                 {Column: "weeks"},
	"tuition":               {Column: "tuition", Kind: query.Number},
	"minimum_skill":         {Column: "minimum_skill"},
	"scholarship_available": {Column: "scholarship_available", Kind: query.Bool},
	"bootcamp_id":           {Column: "bootcamp_id"},
	"user_id":               {Column: "user_id"},
	"created_at":            {Column: "created_at", Kind: query.Time},
}

var reviewSchema = query.Schema{
	"id":          {Column: "id"},
	"title":       {Column: "title"},
	"text":        {Column: "text"},
	"rating":      {Column: "rating", Kind: query.Integer},
	"bootcamp_id": {Column: "bootcamp_id"},
	"category_id": {Column: "category_id"},
	"user_id":     {Column: "user_id"},
	"created_at":  {Column: "created_at", Kind: query.Time},
}

var categorySchema = query.Schema{
	"id":          {Column: "id"},
	"user_id":     {Column: "user_id"},
	"name":        {Column: "name"},
	"slug":        {Column: "slug"},
	"description": {Column: "description"},
	"photo":       {Column: "photo"},
	"created_at":  {Column: "created_at", Kind: query.Time},
	"updated_at":  {Column: "updated_at", Kind: query.Time},
}

var productSchema = query.Schema{
	"id":          {Column: "id"},
	"user_id":     {Column: "user_id"},
	"category_id": {Column: "category_id"},
	"name":        {Column: "name"},
	"slug":        {Column: "slug"},
	"description": {Column: "description"},
	"photo":       {Column: "photo"},
	"price":       {Column: "price", Kind: query.Number},
	"quantity":    {Column: "quantity", Kind: query.Integer},
	"sold":        {Column: "sold", Kind: query.Integer},
	"created_at":  {Column: "created_at", Kind: query.Time},
	"updated_at":  {Column: "updated_at", Kind: query.Time},
}
