package http

// indexHTML is a self-contained page with a question form that POSTs
// to /chat and renders the answer or error inline.
const indexHTML = `<!DOCTYPE html>
<html>
<head>
    <title>RAGBlade</title>
    <meta charset="utf-8">
    <style>
        body {
            font-family: Arial, sans-serif;
            max-width: 800px;
            margin: 50px auto;
            padding: 20px;
            background-color: #f5f5f5;
        }
        .container {
            background: white;
            padding: 30px;
            border-radius: 10px;
            box-shadow: 0 2px 10px rgba(0,0,0,0.1);
        }
        h1 { color: #333; text-align: center; }
        input[type="text"] {
            width: 100%;
            padding: 12px;
            font-size: 16px;
            border: 2px solid #ddd;
            border-radius: 5px;
            box-sizing: border-box;
            margin: 20px 0 0;
        }
        button {
            width: 100%;
            padding: 12px;
            font-size: 16px;
            background-color: #4CAF50;
            color: white;
            border: none;
            border-radius: 5px;
            cursor: pointer;
            margin-top: 10px;
        }
        button:disabled { background-color: #cccccc; cursor: not-allowed; }
        #answer {
            margin-top: 20px;
            padding: 15px;
            background-color: #f9f9f9;
            border-radius: 5px;
            min-height: 50px;
            white-space: pre-wrap;
        }
        .loading { color: #666; font-style: italic; }
        .error { color: #d32f2f; }
    </style>
</head>
<body>
    <div class="container">
        <h1>RAGBlade</h1>
        <p style="text-align: center; color: #666;">Ask a question about the indexed corpus</p>

        <input type="text" id="question" placeholder="e.g. Who is the instructor? When does the course run?" />
        <button onclick="askQuestion()" id="submitBtn">Ask</button>

        <div id="answer"></div>
    </div>

    <script>
        function askQuestion() {
            const question = document.getElementById('question').value.trim();
            const answerDiv = document.getElementById('answer');
            const submitBtn = document.getElementById('submitBtn');

            if (!question) {
                answerDiv.innerHTML = '<span class="error">Please enter a question</span>';
                return;
            }

            submitBtn.disabled = true;
            answerDiv.innerHTML = '<span class="loading">Thinking...</span>';

            fetch('/chat', {
                method: 'POST',
                headers: { 'Content-Type': 'application/json' },
                body: JSON.stringify({ question: question })
            })
            .then(response => response.json())
            .then(data => {
                if (data.error) {
                    answerDiv.innerHTML = '<span class="error">Error: ' + data.error + '</span>';
                } else {
                    answerDiv.innerHTML = '<strong>Answer:</strong><br>' + data.answer;
                }
                submitBtn.disabled = false;
            })
            .catch(error => {
                answerDiv.innerHTML = '<span class="error">Request failed: ' + error.message + '</span>';
                submitBtn.disabled = false;
            });
        }

        document.getElementById('question').addEventListener('keypress', function(e) {
            if (e.key === 'Enter') {
                askQuestion();
            }
        });
    </script>
</body>
</html>
`
