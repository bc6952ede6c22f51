package apitest

/**
	This is an empty file which is needed to get coverpkg to work in the CI.
	It needs at least one file in the package which is not a "test" file as registry_test.go is.

	See https://github.com/golang/go/issues/27333.
**/
