package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/practice --output domain/practice --outpkg practicemock --filename repository_mock.go
